package either

// Map consumes e and transforms its value with onFirst or onSecond,
// whichever matches the live variant. Exactly one of them is called, and
// the result keeps the variant of e.
//
// Map panics with an error wrapping ErrEmpty if e is empty.
func Map[F, S, F2, S2 any](e *Either[F, S], onFirst func(F) F2, onSecond func(S) S2) *Either[F2, S2] {
	index, first, second := e.take("map")
	if index == First {
		return FromFirst[F2, S2](onFirst(first))
	}
	return FromSecond[F2](onSecond(second))
}

// TryMap is like Map but returns ErrEmpty instead of panicking.
func TryMap[F, S, F2, S2 any](e *Either[F, S], onFirst func(F) F2, onSecond func(S) S2) (*Either[F2, S2], error) {
	if e.IsEmpty() {
		return nil, emptyError("map")
	}
	return Map(e, onFirst, onSecond), nil
}

// MapFirst transforms a first value and passes a second value through.
func MapFirst[F, S, F2 any](e *Either[F, S], onFirst func(F) F2) *Either[F2, S] {
	return Map(e, onFirst, identity[S])
}

// MapSecond transforms a second value and passes a first value through.
func MapSecond[F, S, S2 any](e *Either[F, S], onSecond func(S) S2) *Either[F, S2] {
	return Map(e, identity[F], onSecond)
}

// Match consumes e and collapses it into a single value of type T.
//
// Match panics with an error wrapping ErrEmpty if e is empty.
func Match[F, S, T any](e *Either[F, S], onFirst func(F) T, onSecond func(S) T) T {
	index, first, second := e.take("match")
	if index == First {
		return onFirst(first)
	}
	return onSecond(second)
}

// TryMatch is like Match but returns ErrEmpty instead of panicking.
func TryMatch[F, S, T any](e *Either[F, S], onFirst func(F) T, onSecond func(S) T) (T, error) {
	if e.IsEmpty() {
		var zero T
		return zero, emptyError("match")
	}
	return Match(e, onFirst, onSecond), nil
}

// FoldFirst consumes e and, if it holds a first value, replaces the whole
// cell with the one onFirst returns, which may hold either variant. A second
// value passes through. onFirst must not return an empty cell.
func FoldFirst[F, S, F2 any](e *Either[F, S], onFirst func(F) *Either[F2, S]) *Either[F2, S] {
	return Match(e,
		func(f F) *Either[F2, S] { return adopt("fold first", onFirst(f)) },
		FromSecond[F2, S])
}

// FoldSecond is the mirror of FoldFirst.
func FoldSecond[F, S, S2 any](e *Either[F, S], onSecond func(S) *Either[F, S2]) *Either[F, S2] {
	return Match(e,
		FromFirst[F, S2],
		func(s S) *Either[F, S2] { return adopt("fold second", onSecond(s)) })
}

// Swap exchanges the variants of e.
func Swap[F, S any](e *Either[F, S]) *Either[S, F] {
	return Match(e, FromSecond[S, F], FromFirst[S, F])
}

// Flatten collapses a cell whose first variant is itself a cell with the
// same second type.
func Flatten[F, S any](e *Either[*Either[F, S], S]) *Either[F, S] {
	return FoldFirst(e, identity[*Either[F, S]])
}

// adopt moves a cell returned by a fold callback into the result.
func adopt[F, S any](op string, c *Either[F, S]) *Either[F, S] {
	if c.IsEmpty() {
		panic(emptyError(op))
	}
	return Move(c)
}

func identity[T any](v T) T {
	return v
}
