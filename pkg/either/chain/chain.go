package chain

import (
	"github.com/ib-77/either/pkg/either"
)

// Chain wraps an either.Either to enable fluent chaining
type Chain[F, S any] struct {
	cell *either.Either[F, S]
}

// Start creates a new chain that takes ownership of cell
func Start[F, S any](cell *either.Either[F, S]) *Chain[F, S] {
	return &Chain[F, S]{
		cell: either.Move(cell),
	}
}

// FromFirst creates a new chain holding a first value
func FromFirst[F, S any](value F) *Chain[F, S] {
	return &Chain[F, S]{
		cell: either.FromFirst[F, S](value),
	}
}

// FromSecond creates a new chain holding a second value
func FromSecond[F, S any](value S) *Chain[F, S] {
	return &Chain[F, S]{
		cell: either.FromSecond[F](value),
	}
}

// Cell hands out the underlying cell; the chain is left empty
func (c *Chain[F, S]) Cell() *either.Either[F, S] {
	return either.Move(c.cell)
}

// MapFirst transforms a first value without changing its type
func (c *Chain[F, S]) MapFirst(onFirst func(F) F) *Chain[F, S] {
	return &Chain[F, S]{
		cell: either.MapFirst(c.cell, onFirst),
	}
}

// MapSecond transforms a second value without changing its type
func (c *Chain[F, S]) MapSecond(onSecond func(S) S) *Chain[F, S] {
	return &Chain[F, S]{
		cell: either.MapSecond(c.cell, onSecond),
	}
}

// ThenFirst chains a step that may move a first value to the second track
func (c *Chain[F, S]) ThenFirst(onFirst func(F) *either.Either[F, S]) *Chain[F, S] {
	return &Chain[F, S]{
		cell: either.FoldFirst(c.cell, onFirst),
	}
}

// ThenSecond chains a step that may recover a second value to the first track
func (c *Chain[F, S]) ThenSecond(onSecond func(S) *either.Either[F, S]) *Chain[F, S] {
	return &Chain[F, S]{
		cell: either.FoldSecond(c.cell, onSecond),
	}
}

// Ensure performs a side effect on a first value without changing the result
func (c *Chain[F, S]) Ensure(onFirst func(F)) *Chain[F, S] {
	return c.MapFirst(func(f F) F {
		onFirst(f)
		return f
	})
}

// Map chains a transformation that changes the first type
func Map[F, S, F2 any](c *Chain[F, S], onFirst func(F) F2) *Chain[F2, S] {
	return &Chain[F2, S]{
		cell: either.MapFirst(c.cell, onFirst),
	}
}

// Then chains a step that returns a cell with a new first type
func Then[F, S, F2 any](c *Chain[F, S], onFirst func(F) *either.Either[F2, S]) *Chain[F2, S] {
	return &Chain[F2, S]{
		cell: either.FoldFirst(c.cell, onFirst),
	}
}

// Try chains a function that returns (F2, error); a non-nil error moves the
// chain to the second track
func Try[F, F2 any](c *Chain[F, error], tryOnFirst func(F) (F2, error)) *Chain[F2, error] {
	return Then(c, func(f F) *either.Either[F2, error] {
		out, err := tryOnFirst(f)
		if err != nil {
			return either.FromSecond[F2](err)
		}
		return either.FromFirst[F2, error](out)
	})
}

// Finally collapses the chain into a single value
func Finally[F, S, T any](c *Chain[F, S], onFirst func(F) T, onSecond func(S) T) T {
	return either.Match(c.cell, onFirst, onSecond)
}
