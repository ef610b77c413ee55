package parser

import (
	"fmt"
	"reflect"

	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/internal/shared/convert"
)

var errorType = reflect.TypeFor[error]()

func (p *Parser) configureFallback(name string, opts config.Options, st *config.State) error {
	if raw, ok := opts.Lookup(config.KeyFallback); ok {
		if fn, ok := asFallback(raw); ok {
			st.Fallback = fn
		} else {
			p.ignored(name, config.KeyFallback, raw)
		}
	}

	st.FallbackArgs = []any{}
	if raw, ok := opts.Lookup(config.KeyFallbackArgs); ok {
		if args, ok := convert.Slice(raw); ok {
			st.FallbackArgs = args
		} else {
			p.ignored(name, config.KeyFallbackArgs, raw)
		}
	}
	return nil
}

// asFallback accepts any non-variadic func of exactly one parameter.
// Funcs other than config.Fallback are adapted: a trailing error result is
// returned as the error and the first other result as the value.
func asFallback(raw any) (config.Fallback, bool) {
	switch fn := raw.(type) {
	case config.Fallback:
		return fn, fn != nil
	case func(any) (any, error):
		return fn, fn != nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	ft := rv.Type()
	if ft.NumIn() != 1 || ft.IsVariadic() {
		return nil, false
	}

	in := ft.In(0)
	return func(key any) (any, error) {
		arg, err := argValue(key, in)
		if err != nil {
			return nil, err
		}
		return results(rv.Call([]reflect.Value{arg}))
	}, true
}

func argValue(key any, t reflect.Type) (reflect.Value, error) {
	if key == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil is not assignable to %s", config.ErrFallbackKey, t)
	}

	v := reflect.ValueOf(key)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %T is not assignable to %s", config.ErrFallbackKey, key, t)
	}
	return v, nil
}

func results(out []reflect.Value) (value any, err error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) > 0 {
		value = out[0].Interface()
	}
	return value, err
}
