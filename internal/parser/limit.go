package parser

import (
	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/limit"
)

func (p *Parser) parseLimit(name string, opts config.Options, st *config.State) error {
	raw, ok := opts.Lookup(config.KeyLimit)
	if !ok {
		return nil
	}

	spec, ok := limit.Parse(raw)
	if !ok {
		p.ignored(name, config.KeyLimit, raw)
		return nil
	}
	st.Limit = spec
	return nil
}
