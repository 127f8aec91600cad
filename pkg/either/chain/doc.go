// Package chain provides a fluent wrapper around either.Either[F, S]
// for building synchronous two-track chains from the either combinators.
//
// A Chain owns one cell. Every step consumes the chain it is called on and
// returns a new one, so a chain is used once, like the cell inside it.
//
// Key operations:
// - Start/FromFirst/FromSecond: begin a chain from a cell or a value
// - MapFirst/MapSecond: transform one track, keeping its type
// - ThenFirst/ThenSecond: run a step that may switch tracks
// - Map/Then: the same for steps that change the first type
// - Try: call a function (F2, error) and move errors to the second track
// - Ensure: run side effects on a first value without changing it
// - Finally: collapse the chain into a single value
package chain
