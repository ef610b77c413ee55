package limit

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/Borislavv/go-ash-state/hook"
	"github.com/Borislavv/go-ash-state/internal/shared/convert"
)

var validate = validator.New()

// Policy defines how victims are chosen once the limit is exceeded.
type Policy string

const (
	// PolicySampling evicts entries using Redis-like sampling for victim selection.
	PolicySampling Policy = "sampling"

	// PolicyListing evicts entries by iterating over the LRU list directly.
	PolicyListing Policy = "listing"
)

// DefaultReclaim is the share of Size freed by one eviction pass.
const DefaultReclaim = 0.1

// Spec bounds the number of entries a cache holds.
type Spec struct {
	// Size is the maximum number of entries.
	Size int64 `mapstructure:"size" yaml:"size" validate:"gt=0"`

	// Policy defines the victim selection mode.
	// Supported values:
	//   - "sampling": eviction is based on sampling a subset of entries
	//   - "listing":  eviction iterates over the LRU list directly
	Policy Policy `mapstructure:"policy" yaml:"policy" validate:"oneof=sampling listing"`

	// Reclaim is the fraction of Size evicted once the limit is hit.
	//
	// Example:
	//   Size: 1000, Reclaim: 0.1 // drop 100 entries per pass
	Reclaim float64 `mapstructure:"reclaim" yaml:"reclaim" validate:"gt=0,lte=1"`
}

// Parse normalizes a raw limit option. It returns false when the value does not
// describe a limit, in which case the cache is unbounded.
func Parse(raw any) (*Spec, bool) {
	var spec Spec
	switch v := raw.(type) {
	case nil:
		return nil, false
	case Spec:
		spec = v
	case *Spec:
		if v == nil {
			return nil, false
		}
		spec = *v
	default:
		if m, isMap := convert.StringMap(raw); isMap {
			if err := mapstructure.WeakDecode(m, &spec); err != nil {
				return nil, false
			}
			break
		}
		size, ok := convert.Int64(raw)
		if !ok {
			return nil, false
		}
		spec.Size = size
	}

	if spec.Size <= 0 {
		return nil, false
	}
	if spec.Policy == "" {
		spec.Policy = PolicySampling
	}
	if spec.Policy != PolicySampling && spec.Policy != PolicyListing {
		return nil, false
	}
	if spec.Reclaim <= 0 || math.IsNaN(spec.Reclaim) {
		spec.Reclaim = DefaultReclaim
	} else if spec.Reclaim > 1 {
		spec.Reclaim = 1
	}
	return &spec, true
}

// ToHooks returns the eviction hooks enforcing spec, in notification order.
func ToHooks(spec *Spec) []hook.Descriptor {
	if spec == nil {
		return nil
	}
	return []hook.Descriptor{{Impl: &Evictor{Spec: *spec}, Args: *spec}}
}

// ReclaimCount is how many entries one eviction pass removes, at least one.
func (s *Spec) ReclaimCount() int64 {
	return max(int64(float64(s.Size)*s.Reclaim), 1)
}

// Evictor is the post hook that keeps a cache within its Spec.
type Evictor struct {
	Spec Spec
}

func (e *Evictor) Phase() hook.Phase { return hook.Post }

func (e *Evictor) ValidateArgs(args any) error {
	spec, ok := args.(Spec)
	if !ok {
		return fmt.Errorf("evictor expects limit.Spec, got %T", args)
	}
	if spec != e.Spec {
		return errors.New("evictor args do not match its spec")
	}
	if err := validate.Struct(spec); err != nil {
		return fmt.Errorf("evictor spec: %w", err)
	}
	return nil
}
