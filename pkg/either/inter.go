package either

// Shaper is implemented by values that carry an Either[F, S] and can give
// it up, such as *Either itself and fluent chains built on it.
type Shaper[F, S any] interface {
	// Cell returns the underlying cell
	Cell() *Either[F, S]
}

// Tagged reports which variant is live without exposing the value.
type Tagged interface {
	Index() Index
	IsFirst() bool
	IsSecond() bool
	IsEmpty() bool
}

// FromShaper moves the cell carried by s into a new cell.
func FromShaper[F, S any](s Shaper[F, S]) *Either[F, S] {
	if isNil(s) {
		return &Either[F, S]{}
	}
	return Move(s.Cell())
}

var _ Tagged = (*Either[int, string])(nil)
var _ Shaper[int, string] = (*Either[int, string])(nil)
