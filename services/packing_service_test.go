package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

type fakePackingStore struct {
	mu       sync.Mutex
	items    []models.PackingItem
	failDone bool
}

func newFakePackingStore(items ...models.PackingItem) *fakePackingStore {
	return &fakePackingStore{items: items}
}

func (f *fakePackingStore) ListByTrip(tripID string) ([]models.PackingItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PackingItem
	for _, item := range f.items {
		if item.TripID == tripID {
			out = append(out, item)
		}
	}
	SortCanonical(out)
	return out, nil
}

func (f *fakePackingStore) Insert(item *models.PackingItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakePackingStore) Update(item *models.PackingItem) error { return nil }

func (f *fakePackingStore) UpdateDone(itemID string, isDone bool) error {
	if f.failDone {
		return errors.New("write refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items[i].IsDone = isDone
		}
	}
	return nil
}

func (f *fakePackingStore) Delete(itemID string) error { return nil }

func (f *fakePackingStore) UpdateDisplayOrder(itemID string, order int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == itemID {
			o := order
			f.items[i].DisplayOrder = &o
		}
	}
	return nil
}

func packingItem(id, tripID string, categoryID *string, done bool, order *int, created int64) models.PackingItem {
	return models.PackingItem{
		ID:           id,
		TripID:       tripID,
		CategoryID:   categoryID,
		Name:         "item " + id,
		IsDone:       done,
		DisplayOrder: order,
		CreatedAt:    created,
	}
}

func TestPackingList_CombinesFiltersWithAnd(t *testing.T) {
	c1 := strptr("c1")
	store := newFakePackingStore(
		packingItem("p1", "t1", c1, true, pos(0), 100),
		packingItem("p2", "t1", c1, false, pos(1), 200),
		packingItem("p3", "t1", strptr("c2"), true, pos(2), 300),
		packingItem("p4", "t1", nil, true, pos(3), 400),
	)
	service := &PackingService{store: store}

	done := true
	items, err := service.List(&models.ListPackingRequest{
		TripID: "t1", CategoryID: c1, Done: &done,
	})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestPackingList_NoFiltersReturnsAll(t *testing.T) {
	store := newFakePackingStore(
		packingItem("p1", "t1", nil, false, pos(0), 100),
		packingItem("p2", "t1", nil, true, pos(1), 200),
	)
	service := &PackingService{store: store}

	items, err := service.List(&models.ListPackingRequest{TripID: "t1"})

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestPackingList_UnpositionedItemsComeFirst(t *testing.T) {
	store := newFakePackingStore(
		packingItem("ordered", "t1", nil, false, pos(0), 100),
		packingItem("fresh", "t1", nil, false, nil, 500),
	)
	service := &PackingService{store: store}

	items, err := service.List(&models.ListPackingRequest{TripID: "t1"})

	assert.NoError(t, err)
	assert.Equal(t, "fresh", items[0].ID)
}

func TestPackingToggle_FlipsFromClientValue(t *testing.T) {
	store := newFakePackingStore(
		packingItem("p1", "t1", nil, false, nil, 100),
	)
	service := &PackingService{store: store}

	isDone, err := service.Toggle(&models.TogglePackingRequest{ID: "p1", IsDone: false})

	assert.NoError(t, err)
	assert.True(t, isDone)
	assert.True(t, store.items[0].IsDone)
}

func TestPackingToggle_FailedWriteLeavesStateUntouched(t *testing.T) {
	store := newFakePackingStore(
		packingItem("p1", "t1", nil, false, nil, 100),
	)
	store.failDone = true
	service := &PackingService{store: store}

	isDone, err := service.Toggle(&models.TogglePackingRequest{ID: "p1", IsDone: false})

	assert.Error(t, err)
	assert.False(t, isDone)
	assert.False(t, store.items[0].IsDone)
}

func TestPackingReorder_RenumbersWholeTripList(t *testing.T) {
	store := newFakePackingStore(
		packingItem("p1", "t1", nil, false, pos(0), 100),
		packingItem("p2", "t1", nil, false, pos(1), 200),
		packingItem("p3", "t1", nil, false, pos(2), 300),
	)
	service := &PackingService{store: store}

	items, changed, err := service.Reorder(&models.CollectionReorderRequest{
		TripID: "t1", ActiveID: "p1", OverID: "p3",
	})

	assert.NoError(t, err)
	assert.True(t, changed)

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.ID
		assert.Equal(t, i, *item.DisplayOrder)
	}
	assert.Equal(t, []string{"p2", "p3", "p1"}, got)
}
