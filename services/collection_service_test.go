package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	id      string
	pos     *int
	created int64
}

func (r row) EntityID() string       { return r.id }
func (r row) CreatedAtMillis() int64 { return r.created }
func (r row) Position() (int, bool) {
	if r.pos == nil {
		return 0, false
	}
	return *r.pos, true
}

func pos(n int) *int { return &n }

func ids[T Orderable](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.EntityID()
	}
	return out
}

type recordingWriter struct {
	mu     sync.Mutex
	writes map[string]int
	fail   map[string]bool
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{writes: make(map[string]int), fail: make(map[string]bool)}
}

func (w *recordingWriter) UpdateDisplayOrder(id string, order int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail[id] {
		return errors.New("write refused")
	}
	w.writes[id] = order
	return nil
}

func TestMoveItem_MovesForward(t *testing.T) {
	visible := []row{{id: "A"}, {id: "B"}, {id: "C"}}

	moved, ok := MoveItem(visible, "B", "C")

	assert.True(t, ok)
	assert.Equal(t, []string{"A", "C", "B"}, ids(moved))
}

func TestMoveItem_MovesBackward(t *testing.T) {
	visible := []row{{id: "A"}, {id: "B"}, {id: "C"}, {id: "D"}}

	moved, ok := MoveItem(visible, "D", "A")

	assert.True(t, ok)
	assert.Equal(t, []string{"D", "A", "B", "C"}, ids(moved))
}

func TestMoveItem_SameIDIsNoOp(t *testing.T) {
	visible := []row{{id: "A"}, {id: "B"}}

	moved, ok := MoveItem(visible, "A", "A")

	assert.False(t, ok)
	assert.Nil(t, moved)
}

func TestMoveItem_UnknownIDIsNoOp(t *testing.T) {
	visible := []row{{id: "A"}, {id: "B"}}

	_, ok := MoveItem(visible, "A", "Z")
	assert.False(t, ok)

	_, ok = MoveItem(visible, "Z", "B")
	assert.False(t, ok)
}

func TestMoveItem_DoesNotMutateInput(t *testing.T) {
	visible := []row{{id: "A"}, {id: "B"}, {id: "C"}}

	_, ok := MoveItem(visible, "C", "A")

	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, ids(visible))
}

func TestSortCanonical_UnpositionedRowsComeFirstNewestFirst(t *testing.T) {
	items := []row{
		{id: "old", pos: pos(0), created: 100},
		{id: "newer", created: 300},
		{id: "newest", created: 400},
		{id: "second", pos: pos(1), created: 200},
	}

	SortCanonical(items)

	assert.Equal(t, []string{"newest", "newer", "old", "second"}, ids(items))
}

func TestSortCanonical_TiedPositionsBreakOnCreationDesc(t *testing.T) {
	items := []row{
		{id: "older", pos: pos(3), created: 100},
		{id: "newer", pos: pos(3), created: 200},
	}

	SortCanonical(items)

	assert.Equal(t, []string{"newer", "older"}, ids(items))
}

func TestPersistOrder_WritesDenseZeroBasedPositions(t *testing.T) {
	writer := newRecordingWriter()
	moved := []row{{id: "C"}, {id: "A"}, {id: "B"}}

	err := PersistOrder[row](writer, moved)

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"C": 0, "A": 1, "B": 2}, writer.writes)
}

func TestPersistOrder_PartialFailureStillWritesTheRest(t *testing.T) {
	writer := newRecordingWriter()
	writer.fail["B"] = true
	moved := []row{{id: "A"}, {id: "B"}, {id: "C"}}

	err := PersistOrder[row](writer, moved)

	assert.Error(t, err)
	assert.Equal(t, map[string]int{"A": 0, "C": 2}, writer.writes)
}

func TestGroupBy_PartitionsByKey(t *testing.T) {
	items := []row{
		{id: "a1"}, {id: "b1"}, {id: "a2"},
	}

	groups := GroupBy(items, func(r row) string {
		return r.id[:1]
	})

	assert.Len(t, groups, 2)
	assert.Equal(t, []string{"a1", "a2"}, ids(groups["a"]))
	assert.Equal(t, []string{"b1"}, ids(groups["b"]))
}
