package config

import (
	"errors"
	"time"

	"github.com/Borislavv/go-ash-state/hook"
	"github.com/Borislavv/go-ash-state/limit"
	"github.com/Borislavv/go-ash-state/naming"
)

const (
	WriteConcurrency = "write-concurrency"
	ReadConcurrency  = "read-concurrency"
)

// DefaultTTLInterval is the sweep interval used when only a default TTL is given.
const DefaultTTLInterval = 3000 * time.Millisecond

// TableOptions tunes the concurrent key-value table.
type TableOptions map[string]any

// Fallback computes a value for a key missing from the cache.
type Fallback func(key any) (any, error)

// ErrFallbackKey is returned by an adapted fallback called with a key its parameter cannot hold.
var ErrFallbackKey = errors.New("fallback key type mismatch")

// State is the fully resolved configuration of one cache instance.
// It is built once by the parser and must be treated as read-only afterwards.
type State struct {
	// Name is the cache identifier the state was parsed for.
	Name string

	// DisableODE turns off expiration checks on read (on-demand expiration).
	DisableODE bool

	// TableOptions always carries write-concurrency and read-concurrency.
	TableOptions TableOptions

	// DefaultTTL applies to entries written without an explicit TTL. Zero means none.
	DefaultTTL time.Duration

	// Fallback is nil when no fallback is configured.
	Fallback Fallback

	// FallbackArgs are passed along to the fallback, never nil.
	FallbackArgs []any

	// Janitor configures the background expiry sweeper.
	// If nil, expired entries are only removed on access.
	Janitor *JanitorCfg

	// Limit bounds the cache size. If nil, the cache is unbounded.
	Limit *limit.Spec

	// Manager identifies the transaction manager. It is set even when
	// transactions are disabled so the manager can be addressed lazily.
	Manager naming.Identifier

	// PreHooks and PostHooks are notified in slice order.
	PreHooks  []hook.Descriptor
	PostHooks []hook.Descriptor

	Transactions bool
}

func (s *State) HasDefaultTTL() bool {
	return s.DefaultTTL > 0
}

// TTLInterval returns the sweep interval and whether the janitor is active.
func (s *State) TTLInterval() (time.Duration, bool) {
	if !s.Janitor.Enabled() {
		return 0, false
	}
	return s.Janitor.Interval, true
}

// JanitorCfg binds the sweeper identifier to its interval so one never exists without the other.
type JanitorCfg struct {
	Name naming.Identifier

	// Interval between sweeps. Zero is valid and means sweeping continuously.
	Interval time.Duration
}

func (cfg *JanitorCfg) Enabled() bool {
	return cfg != nil
}
