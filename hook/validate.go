package hook

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidHook = errors.New("invalid hook")

// ValidationError reports the first candidate that does not satisfy the descriptor contract.
type ValidationError struct {
	Index int
	Entry any
	Err   error
}

func (e *ValidationError) Error() string {
	if d, ok := e.Entry.(Descriptor); ok && !d.Name.IsZero() {
		return fmt.Sprintf("invalid hook %q at position %d: %v", d.Name.String(), e.Index, e.Err)
	}
	return fmt.Sprintf("invalid hook at position %d (%T): %v", e.Index, e.Entry, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidHook }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(descriptorRules, Descriptor{})
	return v
}

func descriptorRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(Descriptor)
	if d.Impl == nil {
		sl.ReportError(d.Impl, "Impl", "Impl", "required", "")
		return
	}
	if !d.Phase().Valid() {
		sl.ReportError(d.Impl, "Impl", "Impl", "phase", string(d.Phase()))
		return
	}
	if d.Sync && d.Phase() != Post {
		sl.ReportError(d.Sync, "Sync", "Sync", "post_only", "")
	}
}

// Validate checks the whole candidate list as one unit and returns it as descriptors.
// Nothing is returned on failure.
func Validate(candidates []any) ([]Descriptor, error) {
	hooks := make([]Descriptor, 0, len(candidates))
	for i, c := range candidates {
		d, err := validateOne(c)
		if err != nil {
			return nil, &ValidationError{Index: i, Entry: c, Err: err}
		}
		hooks = append(hooks, d)
	}
	return hooks, nil
}

func validateOne(candidate any) (Descriptor, error) {
	var d Descriptor
	switch v := candidate.(type) {
	case Descriptor:
		d = v
	case *Descriptor:
		if v == nil {
			return Descriptor{}, errors.New("nil descriptor")
		}
		d = *v
	default:
		return Descriptor{}, errors.New("not a hook descriptor")
	}

	if err := validate.Struct(d); err != nil {
		return Descriptor{}, fmt.Errorf("descriptor: %w", err)
	}
	if av, ok := d.Impl.(ArgsValidator); ok {
		if err := av.ValidateArgs(d.Args); err != nil {
			return Descriptor{}, fmt.Errorf("args: %w", err)
		}
	}
	return d, nil
}
