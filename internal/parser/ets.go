package parser

import (
	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/internal/shared/convert"
)

// buildTableOptions copies the caller's table options and fills in the
// concurrency defaults the caller did not set explicitly.
func (p *Parser) buildTableOptions(name string, opts config.Options, st *config.State) error {
	table := config.TableOptions{}
	if raw, ok := opts.Lookup(config.KeyTableOptions, config.KeyTableOptionsAlias); ok {
		if decoded, ok := decodeTableOptions(raw); ok {
			table = decoded
		} else {
			p.ignored(name, config.KeyTableOptions, raw)
		}
	}

	for _, key := range []string{config.WriteConcurrency, config.ReadConcurrency} {
		if _, set := table[key]; !set {
			table[key] = true
		}
	}

	st.TableOptions = table
	return nil
}

func decodeTableOptions(raw any) (config.TableOptions, bool) {
	var pairs config.Options
	switch v := raw.(type) {
	case config.Options:
		pairs = v
	case []config.Option:
		pairs = v
	default:
		m, ok := convert.StringMap(raw)
		return m, ok
	}

	table := make(config.TableOptions, len(pairs))
	for _, pair := range pairs {
		if _, seen := table[string(pair.Key)]; !seen {
			table[string(pair.Key)] = pair.Value
		}
	}
	return table, true
}
