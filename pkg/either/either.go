package either

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

var (
	// ErrEmpty is reported when a moved-from or destroyed cell is used.
	ErrEmpty = errors.New("either: cell is empty")
	// ErrInconvertible is reported when a value fits neither variant.
	ErrInconvertible = errors.New("either: value converts to neither variant")
	// ErrMalformed is reported when an encoded cell has no single variant key.
	ErrMalformed = errors.New("either: malformed encoding")
)

// Index tells which variant of a cell is live.
type Index uint8

const (
	Empty Index = iota
	First
	Second
)

func (i Index) String() string {
	switch i {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "empty"
	}
}

// noCopy makes go vet report cells copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Either owns exactly one value, either of type F or of type S.
//
// A cell is handled through a pointer and is never copied: ownership moves
// with Move and Assign, and every combinator consumes the cell it is given,
// leaving it Empty. Only the field named by index is ever read; the other
// one holds its zero value.
type Either[F, S any] struct {
	_      noCopy
	id     uuid.UUID
	index  Index
	first  F
	second S
}

// FromFirst creates a cell holding v as its first variant.
func FromFirst[F, S any](v F) *Either[F, S] {
	return &Either[F, S]{
		id:    uuid.New(),
		index: First,
		first: v,
	}
}

// FromSecond creates a cell holding v as its second variant.
func FromSecond[F, S any](v S) *Either[F, S] {
	return &Either[F, S]{
		id:     uuid.New(),
		index:  Second,
		second: v,
	}
}

// Move transfers src's value, variant and id into a new cell and leaves src
// Empty. Moving an empty cell yields an empty cell.
func Move[F, S any](src *Either[F, S]) *Either[F, S] {
	dst := &Either[F, S]{}
	dst.moveFrom(src)
	return dst
}

// Assign destroys the value e currently holds, then takes over src's value,
// leaving src Empty. The variants of e and src may differ. The error is the
// one returned by destroying the previous value; the move happens anyway.
// A nil e cannot hold a value: Assign reports ErrEmpty and leaves src alone.
func (e *Either[F, S]) Assign(src *Either[F, S]) error {
	if e == src {
		return nil
	}
	if e == nil {
		return emptyError("assign")
	}
	err := e.Destroy()
	e.moveFrom(src)
	return err
}

// Destroy tears down the live value and leaves the cell Empty. Values that
// implement io.Closer are closed. Destroying an empty cell does nothing.
func (e *Either[F, S]) Destroy() error {
	if e.IsEmpty() {
		return nil
	}

	var live any
	if e.index == First {
		live = e.first
	} else {
		live = e.second
	}
	e.clear()

	if c, ok := live.(io.Closer); ok && !isNil(c) {
		return c.Close()
	}
	return nil
}

// Close is Destroy, so that cells nested in cells are torn down with their
// owner and a cell can be bound to a scope with defer.
func (e *Either[F, S]) Close() error {
	return e.Destroy()
}

func (e *Either[F, S]) Index() Index {
	if e == nil {
		return Empty
	}
	return e.index
}

func (e *Either[F, S]) IsFirst() bool {
	return e.Index() == First
}

func (e *Either[F, S]) IsSecond() bool {
	return e.Index() == Second
}

func (e *Either[F, S]) IsEmpty() bool {
	return e.Index() == Empty
}

// ID identifies the owned value. It follows the value through moves; cells
// produced by combinators get a new one. Empty cells report uuid.Nil.
func (e *Either[F, S]) ID() uuid.UUID {
	if e == nil {
		return uuid.Nil
	}
	return e.id
}

func (e *Either[F, S]) String() string {
	if e.IsEmpty() {
		return "either.Empty"
	}
	return fmt.Sprintf("either.%s(%s)", e.index, e.id)
}

// Cell returns e itself, making every cell a Shaper.
func (e *Either[F, S]) Cell() *Either[F, S] {
	return e
}

func (e *Either[F, S]) moveFrom(src *Either[F, S]) {
	if src.IsEmpty() {
		e.clear()
		return
	}

	e.id = src.id
	e.index = src.index
	e.first = src.first
	e.second = src.second
	src.clear()
}

// take hands the live value out and leaves the cell Empty. The value is not
// torn down: the caller owns it now.
func (e *Either[F, S]) take(op string) (Index, F, S) {
	if e.IsEmpty() {
		panic(emptyError(op))
	}
	index, first, second := e.index, e.first, e.second
	e.clear()
	return index, first, second
}

func (e *Either[F, S]) clear() {
	var (
		first  F
		second S
	)
	e.id = uuid.Nil
	e.index = Empty
	e.first = first
	e.second = second
}

func emptyError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmpty)
}
