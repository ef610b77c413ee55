package config

import (
	"maps"
	"slices"

	"github.com/Borislavv/go-ash-state/internal/shared/convert"
)

// Key is a recognized option name. Unknown names are ignored by the parser.
type Key string

const (
	KeyDisableODE   Key = "disable-ode"
	KeyTableOptions Key = "ets-opts"
	// KeyTableOptionsAlias is accepted wherever KeyTableOptions is.
	KeyTableOptionsAlias Key = "table-options"
	KeyLimit             Key = "limit"
	KeyRecordStats       Key = "record-stats"
	KeyHooks             Key = "hooks"
	KeyTransactions      Key = "transactions"
	KeyFallback          Key = "fallback"
	KeyFallbackArgs      Key = "fallback-args"
	KeyDefaultTTL        Key = "default-ttl"
	KeyTTLInterval       Key = "ttl-interval"
)

// Option is a single (name, value) pair supplied by the caller.
type Option struct {
	Key   Key
	Value any
}

func With(key Key, value any) Option {
	return Option{Key: key, Value: value}
}

// Options is an ordered option list; a key may repeat.
type Options []Option

// Lookup returns the value of the first option whose key is one of keys.
func (o Options) Lookup(keys ...Key) (any, bool) {
	for _, opt := range o {
		for _, k := range keys {
			if opt.Key == k {
				return opt.Value, true
			}
		}
	}
	return nil, false
}

// Coerce turns untyped input into an option list. Accepted shapes:
//   - Options or []Option
//   - a map keyed by strings (keys in sorted order)
//   - a sequence of Option values or single-key maps, e.g. a decoded YAML list
//
// Anything else is not a valid option list and yields an empty one.
func Coerce(raw any) Options {
	switch v := raw.(type) {
	case Options:
		return v
	case []Option:
		return v
	}

	if m, ok := convert.StringMap(raw); ok {
		return fromMap(m)
	}
	if s, ok := convert.Slice(raw); ok {
		opts := make(Options, 0, len(s))
		for _, item := range s {
			if opt, ok := item.(Option); ok {
				opts = append(opts, opt)
				continue
			}
			m, ok := convert.StringMap(item)
			if !ok {
				return Options{}
			}
			opts = append(opts, fromMap(m)...)
		}
		return opts
	}
	return Options{}
}

func fromMap(m map[string]any) Options {
	opts := make(Options, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		opts = append(opts, With(Key(name), m[name]))
	}
	return opts
}
