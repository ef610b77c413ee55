package hook

import (
	"time"

	"github.com/Borislavv/go-ash-state/naming"
)

// Phase tells whether a hook is notified before or after a cache operation.
type Phase string

const (
	Pre  Phase = "pre"
	Post Phase = "post"
)

func (p Phase) Valid() bool {
	return p == Pre || p == Post
}

// Implementation is what a hook descriptor references.
type Implementation interface {
	Phase() Phase
}

// ArgsValidator is implemented by hooks that check their startup arguments.
type ArgsValidator interface {
	ValidateArgs(args any) error
}

// Descriptor describes a hook to be started alongside a cache instance.
type Descriptor struct {
	// Name is optional; hooks owned by the cache get a derived one.
	Name naming.Identifier

	// Impl is the hook implementation, its phase decides the notification order bucket.
	// Its own fields are not validated here, ArgsValidator is the hook's extension point.
	Impl Implementation `validate:"-"`

	// Args are passed to the hook on startup.
	Args any `validate:"-"`

	// Sync marks a hook that provides a synchronous result to the caller.
	// Only post hooks may do so.
	Sync bool

	// Timeout bounds a single notification, zero means no bound.
	Timeout time.Duration `validate:"min=0"`
}

func (d Descriptor) Phase() Phase {
	if d.Impl == nil {
		return ""
	}
	return d.Impl.Phase()
}

// Partition splits validated hooks by phase, keeping the relative order of each phase.
func Partition(hooks []Descriptor) (pre, post []Descriptor) {
	pre, post = make([]Descriptor, 0, len(hooks)), make([]Descriptor, 0, len(hooks))
	for _, h := range hooks {
		if h.Phase() == Pre {
			pre = append(pre, h)
		} else {
			post = append(post, h)
		}
	}
	return pre, post
}
