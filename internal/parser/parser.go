package parser

import (
	"fmt"
	"log/slog"

	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/naming"
)

// Parser resolves a cache option list into a config.State.
// It keeps no state between calls and is safe for concurrent use.
type Parser struct {
	logger *slog.Logger
	names  naming.Deriver
}

type step func(name string, opts config.Options, st *config.State) error

func New(logger *slog.Logger, names naming.Deriver) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if names == nil {
		names = naming.Default()
	}
	return &Parser{logger: logger, names: names}
}

// Parse runs every sub-parser in a fixed order and stops at the first failure,
// in which case no state is returned. A nil option list is treated as empty.
func (p *Parser) Parse(name string, opts config.Options) (*config.State, error) {
	if opts == nil {
		opts = config.Options{}
	}

	st := &config.State{
		Name:       name,
		DisableODE: p.flag(name, opts, config.KeyDisableODE),
	}

	// order matters: hook assembly reads the resolved limit
	pipeline := []step{
		p.buildTableOptions,
		p.parseLimit,
		p.assembleHooks,
		p.configureTransactions,
		p.configureFallback,
		p.configureTTL,
	}
	for _, run := range pipeline {
		if err := run(name, opts, st); err != nil {
			return nil, err
		}
	}

	interval, sweeping := st.TTLInterval()
	p.logger.Debug("cache state resolved",
		"cache", name,
		"limit", st.Limit != nil,
		"pre_hooks", len(st.PreHooks),
		"post_hooks", len(st.PostHooks),
		"transactions", st.Transactions,
		"default_ttl", st.DefaultTTL.String(),
		"janitor", sweeping,
		"ttl_interval", interval.String(),
	)

	return st, nil
}

// flag reads a boolean option, anything but a bool counts as false.
func (p *Parser) flag(name string, opts config.Options, key config.Key) bool {
	raw, ok := opts.Lookup(key)
	if !ok {
		return false
	}
	b, isBool := raw.(bool)
	if !isBool {
		p.ignored(name, key, raw)
	}
	return b
}

// ignored records a malformed value replaced by the option's default.
func (p *Parser) ignored(name string, key config.Key, value any) {
	p.logger.Debug("option ignored", "cache", name, "option", string(key), "type", fmt.Sprintf("%T", value))
}
