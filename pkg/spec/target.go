package spec

import (
	"fmt"
	"reflect"
)

// Target is the unit a root group describes. It drives the default subject of
// every group below it.
type Target struct {
	name  string
	value any
	ctor  func() any
}

// Type describes T. The default subject is a fresh instance of T: an empty
// slice, map or channel, a pointer to a new zero value, or the zero value for
// any other kind.
func Type[T any]() Target {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return Target{
		name: t.String(),
		ctor: func() any { return fresh(t) },
	}
}

// TypeWith describes T with an explicit constructor used for the default subject.
func TypeWith[T any](ctor func() T) Target {
	return Target{
		name: reflect.TypeOf((*T)(nil)).Elem().String(),
		ctor: func() any { return ctor() },
	}
}

// Value describes a value that cannot be constructed. The default subject is
// the value itself.
func Value(v any) Target {
	return Target{name: fmt.Sprintf("%v", v), value: v}
}

// Name returns the description used for the group.
func (t Target) Name() string {
	return t.name
}

// Constructible reports whether the default subject is built by a constructor.
func (t Target) Constructible() bool {
	return t.ctor != nil
}

func fresh(t reflect.Type) any {
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface()
	case reflect.Map:
		return reflect.MakeMap(t).Interface()
	case reflect.Chan:
		ch := reflect.MakeChan(reflect.ChanOf(reflect.BothDir, t.Elem()), 0)
		return ch.Convert(t).Interface()
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface()
	default:
		return reflect.Zero(t).Interface()
	}
}

// instance returns the default subject for the target.
func (t Target) instance() any {
	if t.ctor != nil {
		return t.ctor()
	}
	return t.value
}
