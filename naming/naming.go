package naming

import "github.com/zeebo/xxh3"

const (
	statsSuffix   = "stats"
	janitorSuffix = "janitor"
	managerSuffix = "manager"
)

// Identifier addresses a process belonging to a cache instance.
// The key is an xxh3 digest of the name and is what Registry buckets on.
type Identifier struct {
	name string
	key  uint64
}

func New(name string) Identifier {
	return Identifier{name: name, key: xxh3.HashString(name)}
}

func (id Identifier) String() string { return id.name }
func (id Identifier) Key() uint64    { return id.key }
func (id Identifier) IsZero() bool   { return id.name == "" }

// Deriver derives identifiers of the per-cache collaborators from the cache name.
// Any process started later under one of these identifiers must use the same Deriver.
type Deriver interface {
	StatsName(cache string) Identifier
	JanitorName(cache string) Identifier
	ManagerName(cache string) Identifier
}

// SuffixDeriver joins the cache name and a fixed suffix: "<cache><sep><suffix>".
type SuffixDeriver struct {
	Sep string
}

// Default returns the deriver producing "<cache>_stats", "<cache>_janitor" and "<cache>_manager".
func Default() SuffixDeriver {
	return SuffixDeriver{Sep: "_"}
}

func (d SuffixDeriver) StatsName(cache string) Identifier   { return d.derive(cache, statsSuffix) }
func (d SuffixDeriver) JanitorName(cache string) Identifier { return d.derive(cache, janitorSuffix) }
func (d SuffixDeriver) ManagerName(cache string) Identifier { return d.derive(cache, managerSuffix) }

func (d SuffixDeriver) derive(cache, suffix string) Identifier {
	return New(cache + d.Sep + suffix)
}
