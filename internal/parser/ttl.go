package parser

import (
	"math"
	"time"

	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/internal/shared/convert"
)

const (
	// noSweep as ttl-interval disables the janitor even when a default TTL is set.
	noSweep   int64 = -1
	maxMillis       = math.MaxInt64 / int64(time.Millisecond)
)

// configureTTL resolves the default TTL and whether a janitor sweeps expired entries:
//   - interval absent, default TTL present: sweep every config.DefaultTTLInterval
//   - interval present and not noSweep (zero included): sweep at that interval
//   - otherwise: no janitor
func (p *Parser) configureTTL(name string, opts config.Options, st *config.State) error {
	ttl, hasTTL := p.millis(name, opts, config.KeyDefaultTTL, func(ms int64) bool { return ms > 0 })
	interval, hasInterval := p.millis(name, opts, config.KeyTTLInterval, func(ms int64) bool { return ms >= noSweep })

	if hasTTL {
		st.DefaultTTL = time.Duration(ttl) * time.Millisecond
	}

	janitor := p.names.JanitorName(name)
	switch {
	case !hasInterval && hasTTL:
		st.Janitor = &config.JanitorCfg{Name: janitor, Interval: config.DefaultTTLInterval}
	case hasInterval && interval > noSweep:
		st.Janitor = &config.JanitorCfg{Name: janitor, Interval: time.Duration(interval) * time.Millisecond}
	}
	return nil
}

// millis reads an integer option in milliseconds. A time.Duration must be a
// whole number of milliseconds.
func (p *Parser) millis(name string, opts config.Options, key config.Key, accept func(ms int64) bool) (int64, bool) {
	raw, ok := opts.Lookup(key)
	if !ok {
		return 0, false
	}

	var ms int64
	if d, isDuration := raw.(time.Duration); isDuration {
		ms, ok = d.Milliseconds(), d%time.Millisecond == 0
	} else {
		ms, ok = convert.Int64(raw)
	}
	if !ok || ms > maxMillis || !accept(ms) {
		p.ignored(name, key, raw)
		return 0, false
	}
	return ms, true
}
