// Package either provides Either[F, S], a cell that owns exactly one value
// of one of two types.
//
// A cell is created with FromFirst or FromSecond, or with New, which picks
// the variant from the value's type and prefers the first one when both fit.
// Cells are move-only: Move and Assign transfer the value and leave the
// source Empty, and Destroy (or Close) tears the value down exactly once,
// closing it if it is an io.Closer.
//
// The value is never handed out directly. It is consumed through
// combinators, each of which empties the cell it is given:
// - Map/MapFirst/MapSecond: transform the live value, keeping the variant
// - Match: collapse both variants into one result type
// - FoldFirst/FoldSecond: let one branch produce a whole new cell
// - Swap/Flatten: reshape the cell
//
// Using an empty cell panics with an error wrapping ErrEmpty; TryMap and
// TryMatch report it as an error instead.
package either
