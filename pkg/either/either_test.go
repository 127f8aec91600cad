package either

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resource counts how many times it has been closed
type resource struct {
	name   string
	closed *int
	err    error
}

func newResource(name string) (*resource, *int) {
	closed := 0
	return &resource{name: name, closed: &closed}, &closed
}

func (r *resource) Close() error {
	*r.closed++
	return r.err
}

func TestFromFirst_HoldsFirstOnly(t *testing.T) {
	t.Parallel()

	e := FromFirst[int, string](5)

	assert.True(t, e.IsFirst())
	assert.False(t, e.IsSecond())
	assert.False(t, e.IsEmpty())
	assert.Equal(t, First, e.Index())
	assert.NotEqual(t, uuid.Nil, e.ID())
}

func TestFromSecond_HoldsSecondOnly(t *testing.T) {
	t.Parallel()

	e := FromSecond[int]("err")

	assert.True(t, e.IsSecond())
	assert.False(t, e.IsFirst())
	assert.False(t, e.IsEmpty())
	assert.Equal(t, Second, e.Index())
}

func TestMove_TransfersValueAndLeavesSourceEmpty(t *testing.T) {
	t.Parallel()

	r, closed := newResource("db")
	a := FromFirst[*resource, string](r)
	id := a.ID()

	b := Move(a)

	assert.True(t, a.IsEmpty())
	assert.Equal(t, uuid.Nil, a.ID())
	require.True(t, b.IsFirst())
	assert.Equal(t, id, b.ID())
	assert.Same(t, r, Match(b, func(f *resource) *resource { return f }, func(string) *resource { return nil }))
	assert.Equal(t, 0, *closed, "moving must not close the value")
}

func TestMove_DestroysExactlyOnce(t *testing.T) {
	t.Parallel()

	r, closed := newResource("file")
	a := FromSecond[int](r)
	b := Move(a)
	c := Move(b)

	require.NoError(t, a.Destroy())
	require.NoError(t, b.Destroy())
	require.NoError(t, c.Destroy())
	require.NoError(t, c.Destroy())

	assert.Equal(t, 1, *closed)
}

func TestMove_EmptySource(t *testing.T) {
	t.Parallel()

	a := FromFirst[int, string](1)
	_ = Move(a)

	b := Move(a)
	assert.True(t, b.IsEmpty())
}

func TestAssign_AcrossVariants(t *testing.T) {
	t.Parallel()

	r1, closed1 := newResource("one")
	r2, closed2 := newResource("two")
	a := FromFirst[*resource, *resource](r1)
	b := FromSecond[*resource](r2)
	id := b.ID()

	require.NoError(t, a.Assign(b))

	assert.Equal(t, 1, *closed1, "previous value is destroyed")
	assert.Equal(t, 0, *closed2)
	assert.True(t, a.IsSecond())
	assert.Equal(t, id, a.ID())
	assert.True(t, b.IsEmpty())

	require.NoError(t, a.Destroy())
	require.NoError(t, b.Destroy())
	assert.Equal(t, 1, *closed1)
	assert.Equal(t, 1, *closed2)
}

func TestAssign_IntoEmptyCell(t *testing.T) {
	t.Parallel()

	target := Move(FromFirst[int, string](1))
	_ = Move(target)
	require.True(t, target.IsEmpty())

	require.NoError(t, target.Assign(FromSecond[int]("x")))
	assert.True(t, target.IsSecond())
}

func TestAssign_Self(t *testing.T) {
	t.Parallel()

	r, closed := newResource("self")
	a := FromFirst[*resource, int](r)

	require.NoError(t, a.Assign(a))

	assert.True(t, a.IsFirst())
	assert.Equal(t, 0, *closed)
}

func TestAssign_ReportsCloseErrorAndStillMoves(t *testing.T) {
	t.Parallel()

	r, _ := newResource("broken")
	r.err = errors.New("close failed")
	a := FromFirst[*resource, int](r)
	b := FromSecond[*resource](7)

	err := a.Assign(b)

	assert.EqualError(t, err, "close failed")
	assert.True(t, a.IsSecond())
	assert.True(t, b.IsEmpty())
}

func TestAssign_NilTarget(t *testing.T) {
	t.Parallel()

	var target *Either[int, string]
	src := FromFirst[int, string](3)

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, target.Assign(src), ErrEmpty)
	})
	assert.True(t, src.IsFirst(), "a failed assign leaves the source alone")
}

func TestDestroy_Idempotent(t *testing.T) {
	t.Parallel()

	r, closed := newResource("x")
	e := FromFirst[*resource, int](r)

	require.NoError(t, e.Destroy())
	require.NoError(t, e.Destroy())
	require.NoError(t, e.Close())

	assert.True(t, e.IsEmpty())
	assert.Equal(t, 1, *closed)
}

func TestDestroy_ValueWithoutCloser(t *testing.T) {
	t.Parallel()

	e := FromSecond[int]("plain")

	require.NoError(t, e.Destroy())
	assert.True(t, e.IsEmpty())
}

func TestDestroy_NilPointerValue(t *testing.T) {
	t.Parallel()

	e := FromFirst[*resource, int](nil)

	assert.NotPanics(t, func() {
		assert.NoError(t, e.Destroy())
	})
	assert.True(t, e.IsEmpty())
}

func TestDestroy_NestedCells(t *testing.T) {
	t.Parallel()

	r, closed := newResource("inner")
	inner := FromSecond[int](r)
	outer := FromFirst[*Either[int, *resource], string](inner)

	require.NoError(t, outer.Destroy())

	assert.Equal(t, 1, *closed)
	assert.True(t, inner.IsEmpty())
}

func TestDestroy_DeferredClose(t *testing.T) {
	t.Parallel()

	r, closed := newResource("scoped")
	func() {
		e := FromFirst[*resource, int](r)
		defer e.Close()
		assert.True(t, e.IsFirst())
	}()

	assert.Equal(t, 1, *closed)
}

func TestNilCell_BehavesAsEmpty(t *testing.T) {
	t.Parallel()

	var e *Either[int, string]

	assert.True(t, e.IsEmpty())
	assert.Equal(t, Empty, e.Index())
	assert.Equal(t, uuid.Nil, e.ID())
	assert.NoError(t, e.Destroy())
	assert.True(t, Move(e).IsEmpty())
}

func TestIndex_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "first", First.String())
	assert.Equal(t, "second", Second.String())
}

func TestString(t *testing.T) {
	t.Parallel()

	e := FromFirst[int, string](1)
	assert.Equal(t, "either.first("+e.ID().String()+")", e.String())

	_ = Move(e)
	assert.Equal(t, "either.Empty", e.String())
}

func TestFromShaper(t *testing.T) {
	t.Parallel()

	src := FromSecond[int]("s")
	e := FromShaper[int, string](src)

	assert.True(t, src.IsEmpty())
	assert.True(t, e.IsSecond())
	assert.True(t, FromShaper[int, string](nil).IsEmpty())
}
