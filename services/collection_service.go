// services/collection_service.go
//
// Shared core for the reorderable collections (schedules, expenses,
// packing items, words, expense categories). A reorder always runs against
// the currently visible, possibly filtered subset: the moved rows get dense
// zero-based positions, rows outside the subset are never touched, and the
// caller reconciles with a fresh select afterwards.
package services

import (
	"errors"
	"sort"
	"sync"
)

// Orderable is implemented by every reorderable row type
type Orderable interface {
	EntityID() string
	Position() (int, bool)
	CreatedAtMillis() int64
}

// PositionWriter persists a single row's position within its collection
type PositionWriter interface {
	UpdateDisplayOrder(id string, order int) error
}

// SortCanonical sorts rows into display order: rows without a persisted
// position come first, then explicit positions ascending. Rows without a
// position (and rows tied on one) sort newest first among themselves.
// In production this ordering comes from the repositories' ORDER BY
// clauses (display_order ASC NULLS FIRST, created_at DESC); this is the
// in-memory equivalent, used by stores that have no SQL underneath.
func SortCanonical[T Orderable](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, iok := items[i].Position()
		pj, jok := items[j].Position()
		if iok != jok {
			return !iok
		}
		if iok && pi != pj {
			return pi < pj
		}
		return items[i].CreatedAtMillis() > items[j].CreatedAtMillis()
	})
}

// MoveItem applies list-move semantics to the visible sequence: the active
// row is removed and reinserted at the over row's index. ok is false when
// the move is a no-op (active == over, or either row is not in the
// sequence); a no-op must not be persisted.
func MoveItem[T Orderable](visible []T, activeID, overID string) ([]T, bool) {
	if activeID == overID {
		return nil, false
	}

	oldIndex, newIndex := -1, -1
	for i, item := range visible {
		switch item.EntityID() {
		case activeID:
			oldIndex = i
		case overID:
			newIndex = i
		}
	}
	if oldIndex < 0 || newIndex < 0 {
		return nil, false
	}

	moved := make([]T, 0, len(visible))
	moved = append(moved, visible[:oldIndex]...)
	moved = append(moved, visible[oldIndex+1:]...)

	var zero T
	moved = append(moved, zero)
	copy(moved[newIndex+1:], moved[newIndex:])
	moved[newIndex] = visible[oldIndex]

	return moved, true
}

// PersistOrder writes display_order = index for every row of the moved
// visible sequence. The updates are issued concurrently and all awaited.
// Failures are collected, not retried: the caller reconciles with a fresh
// select whatever the outcome, and that select is the sole correction for
// a partially failed batch.
func PersistOrder[T Orderable](writer PositionWriter, moved []T) error {
	var wg sync.WaitGroup
	errs := make([]error, len(moved))

	for i, item := range moved {
		wg.Add(1)
		go func(index int, id string) {
			defer wg.Done()
			errs[index] = writer.UpdateDisplayOrder(id, index)
		}(i, item.EntityID())
	}
	wg.Wait()

	return errors.Join(errs...)
}

// GroupBy partitions rows into display groups without touching the
// persisted order. Rows whose key function returns "" land in the "" group.
func GroupBy[T Orderable](items []T, key func(T) string) map[string][]T {
	groups := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
