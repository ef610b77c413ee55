package ashstate

import (
	"fmt"
	"log/slog"

	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/hook"
	"github.com/Borislavv/go-ash-state/internal/parser"
	"github.com/Borislavv/go-ash-state/naming"
)

type (
	State               = config.State
	Option              = config.Option
	Options             = config.Options
	HookValidationError = hook.ValidationError
)

// ErrInvalidHook matches every error caused by a hook that fails validation.
var ErrInvalidHook = hook.ErrInvalidHook

type Parser interface {
	Parse(name string, opts config.Options) (*config.State, error)
}

// New returns a parser logging to logger and naming collaborators with names.
// Nil arguments fall back to slog.Default() and naming.Default().
func New(logger *slog.Logger, names naming.Deriver) Parser {
	return parser.New(logger, names)
}

// Parse resolves opts for the cache called name with the default logger and deriver.
// Any error is fatal to cache startup.
func Parse(name string, opts config.Options) (*config.State, error) {
	return parser.New(slog.Default(), naming.Default()).Parse(name, opts)
}

// Instance is what a cache owns once its options are resolved: the read-only
// state and the registry its collaborators are published in.
type Instance struct {
	State    *config.State
	Registry *naming.Registry
	names    naming.Deriver
}

// NewInstance parses opts and registers every named hook under its identifier.
func NewInstance(name string, opts config.Options, logger *slog.Logger, names naming.Deriver) (*Instance, error) {
	if names == nil {
		names = naming.Default()
	}

	st, err := parser.New(logger, names).Parse(name, opts)
	if err != nil {
		return nil, err
	}

	registry := naming.NewRegistry()
	for _, hooks := range [][]hook.Descriptor{st.PreHooks, st.PostHooks} {
		for _, h := range hooks {
			if h.Name.IsZero() {
				continue
			}
			if err = registry.Register(h.Name, h.Impl); err != nil {
				return nil, fmt.Errorf("cache %q: %w", name, err)
			}
		}
	}

	return &Instance{State: st, Registry: registry, names: names}, nil
}

// Stats returns the statistics hook when record-stats was enabled.
func (i *Instance) Stats() (*hook.Stats, bool) {
	ref, ok := i.Registry.Lookup(i.names.StatsName(i.State.Name))
	if !ok {
		return nil, false
	}
	stats, ok := ref.(*hook.Stats)
	return stats, ok
}
