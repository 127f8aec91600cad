package either

import (
	"fmt"
	"reflect"
)

// New stores v in whichever variant it fits, following IndexOf: the first
// variant wins when v fits both. A value that fits neither is rejected with
// ErrInconvertible.
//
// An exact fit beats a conversion: an int goes into an Either[float64, int]
// as its second variant, since it is assignable to int and only convertible
// to float64.
//
// FromFirst and FromSecond are checked by the compiler and should be
// preferred whenever the caller knows the variant.
func New[F, S any](v any) (*Either[F, S], error) {
	switch IndexOf[F, S](v) {
	case First:
		return FromFirst[F, S](convert[F](v)), nil
	case Second:
		return FromSecond[F](convert[S](v)), nil
	}
	return nil, fmt.Errorf("%T into %s: %w", v, shapeName[F, S](), ErrInconvertible)
}

// MustNew is like New but panics if v fits neither variant.
func MustNew[F, S any](v any) *Either[F, S] {
	e, err := New[F, S](v)
	if err != nil {
		panic(err)
	}
	return e
}

// IndexOf resolves the variant v would populate in an Either[F, S]. It
// follows Resolve and also rejects conversions that fail for this particular
// value, such as a slice shorter than the array it would convert to.
func IndexOf[F, S any](v any) Index {
	if v == nil {
		return Resolve[F, S](nil)
	}

	value := reflect.ValueOf(v)
	t := value.Type()
	first, second := reflect.TypeFor[F](), reflect.TypeFor[S]()

	switch {
	case t.AssignableTo(first):
		return First
	case t.AssignableTo(second):
		return Second
	case convertibleValue(value, first):
		return First
	case convertibleValue(value, second):
		return Second
	}
	return Empty
}

// Resolve decides which variant of an Either[F, S] a value of type t
// populates. Assignability is tried first, to F then to S; then plain
// conversion, in the same order. Empty means neither fits. A nil t stands
// for untyped nil and resolves to the first variant that can hold nil.
// Resolve only looks at types; use IndexOf for a concrete value.
func Resolve[F, S any](t reflect.Type) Index {
	first, second := reflect.TypeFor[F](), reflect.TypeFor[S]()

	if t == nil {
		switch {
		case nilable(first):
			return First
		case nilable(second):
			return Second
		}
		return Empty
	}

	switch {
	case t.AssignableTo(first):
		return First
	case t.AssignableTo(second):
		return Second
	case convertible(t, first):
		return First
	case convertible(t, second):
		return Second
	}
	return Empty
}

// convertible excludes integer to string conversions, which yield a rune
// rather than a textual form of the number.
func convertible(from, to reflect.Type) bool {
	if to.Kind() == reflect.String && isInteger(from.Kind()) {
		return false
	}
	return from.ConvertibleTo(to)
}

// convertibleValue is convertible plus the length check that slice to array
// conversions make at run time.
func convertibleValue(v reflect.Value, to reflect.Type) bool {
	if !convertible(v.Type(), to) {
		return false
	}
	if v.Kind() != reflect.Slice {
		return true
	}
	switch {
	case to.Kind() == reflect.Array:
		return v.Len() >= to.Len()
	case to.Kind() == reflect.Ptr && to.Elem().Kind() == reflect.Array:
		return v.Len() >= to.Elem().Len()
	}
	return true
}

func convert[T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}
	var zero T
	if v == nil {
		return zero
	}
	return reflect.ValueOf(v).Convert(reflect.TypeFor[T]()).Interface().(T)
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// isNil reports nil interfaces and interfaces wrapping a nil pointer.
func isNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func shapeName[F, S any]() string {
	return fmt.Sprintf("either.Either[%s, %s]", reflect.TypeFor[F](), reflect.TypeFor[S]())
}
