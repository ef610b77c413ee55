package parser

import (
	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/hook"
	"github.com/Borislavv/go-ash-state/internal/shared/convert"
	"github.com/Borislavv/go-ash-state/limit"
)

// assembleHooks concatenates the stats hook, the limit hooks and the caller's hooks
// in that order, validates them as a unit and splits them by phase.
// It is the only step that can fail.
func (p *Parser) assembleHooks(name string, opts config.Options, st *config.State) error {
	limitHooks := limit.ToHooks(st.Limit)
	candidates := make([]any, 0, 1+len(limitHooks))

	if p.flag(name, opts, config.KeyRecordStats) {
		candidates = append(candidates, hook.Descriptor{
			Name: p.names.StatsName(name),
			Impl: hook.NewStats(),
		})
	}
	for _, h := range limitHooks {
		candidates = append(candidates, h)
	}
	if raw, ok := opts.Lookup(config.KeyHooks); ok {
		candidates = append(candidates, userHooks(raw)...)
	}

	hooks, err := hook.Validate(candidates)
	if err != nil {
		return err
	}

	st.PreHooks, st.PostHooks = hook.Partition(hooks)
	return nil
}

// userHooks wraps a lone hook into a list. Values that are neither a hook nor a
// sequence are kept as a single candidate so validation reports them.
func userHooks(raw any) []any {
	switch raw.(type) {
	case nil:
		return nil
	case hook.Descriptor, *hook.Descriptor:
		return []any{raw}
	}
	if list, ok := convert.Slice(raw); ok {
		return list
	}
	return []any{raw}
}
