package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

type fakeScheduleStore struct {
	schedules   []models.Schedule
	listCalls   int
	orderWrites map[string]int
}

func newFakeScheduleStore(schedules ...models.Schedule) *fakeScheduleStore {
	return &fakeScheduleStore{schedules: schedules, orderWrites: make(map[string]int)}
}

func (f *fakeScheduleStore) ListByTrip(tripID string) ([]models.Schedule, error) {
	f.listCalls++
	var out []models.Schedule
	for _, s := range f.schedules {
		if s.TripID == tripID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) ListByDate(tripID, date string) ([]models.Schedule, error) {
	f.listCalls++
	var out []models.Schedule
	for _, s := range f.schedules {
		if s.TripID == tripID && s.Date == date {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderNo < out[j].OrderNo })
	return out, nil
}

func (f *fakeScheduleStore) Insert(s *models.Schedule) error {
	f.schedules = append(f.schedules, *s)
	return nil
}

func (f *fakeScheduleStore) Update(s *models.Schedule) error { return nil }
func (f *fakeScheduleStore) Delete(scheduleID string) error  { return nil }

func (f *fakeScheduleStore) UpdateOrderNo(scheduleID string, orderNo int) error {
	f.orderWrites[scheduleID] = orderNo
	for i := range f.schedules {
		if f.schedules[i].ID == scheduleID {
			f.schedules[i].OrderNo = int64(orderNo)
		}
	}
	return nil
}

func strptr(s string) *string { return &s }

func schedule(id, tripID, date string, orderNo int64, timeRange *string) models.Schedule {
	return models.Schedule{
		ID:      id,
		TripID:  tripID,
		Title:   "entry " + id,
		Date:    date,
		Time:    timeRange,
		OrderNo: orderNo,
	}
}

func TestSortSchedulesByTime_TimedEntriesSortByStartWithinDay(t *testing.T) {
	schedules := []models.Schedule{
		schedule("late", "t1", "2026-05-01", 0, strptr("14:00")),
		schedule("early", "t1", "2026-05-01", 1, strptr("09:30 ~ 11:00")),
		schedule("untimed", "t1", "2026-05-01", 2, nil),
		schedule("prevday", "t1", "2026-04-30", 9, strptr("23:00")),
	}

	SortSchedulesByTime(schedules)

	got := make([]string, len(schedules))
	for i, s := range schedules {
		got[i] = s.ID
	}
	assert.Equal(t, []string{"prevday", "early", "late", "untimed"}, got)
}

func TestSortSchedulesByTime_RangeComparesOnStart(t *testing.T) {
	schedules := []models.Schedule{
		schedule("b", "t1", "2026-05-01", 0, strptr("10:00 ~ 18:00")),
		schedule("a", "t1", "2026-05-01", 1, strptr("09:00 ~ 09:30")),
	}

	SortSchedulesByTime(schedules)

	assert.Equal(t, "a", schedules[0].ID)
	assert.Equal(t, "b", schedules[1].ID)
}

func TestScheduleReorder_SameIDTouchesNothing(t *testing.T) {
	store := newFakeScheduleStore(
		schedule("s1", "t1", "2026-05-01", 0, nil),
		schedule("s2", "t1", "2026-05-01", 1, nil),
	)
	service := &ScheduleService{store: store}

	items, changed, err := service.Reorder(&models.ScheduleReorderRequest{
		TripID: "t1", Date: "2026-05-01", ActiveID: "s1", OverID: "s1",
	})

	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, items)
	assert.Zero(t, store.listCalls)
	assert.Empty(t, store.orderWrites)
}

func TestScheduleReorder_UnknownIDLeavesOrderUntouched(t *testing.T) {
	store := newFakeScheduleStore(
		schedule("s1", "t1", "2026-05-01", 0, nil),
		schedule("s2", "t1", "2026-05-01", 1, nil),
	)
	service := &ScheduleService{store: store}

	items, changed, err := service.Reorder(&models.ScheduleReorderRequest{
		TripID: "t1", Date: "2026-05-01", ActiveID: "s1", OverID: "ghost",
	})

	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, items, 2)
	assert.Empty(t, store.orderWrites)
}

func TestScheduleReorder_RenumbersOnlyTheDayGroup(t *testing.T) {
	store := newFakeScheduleStore(
		schedule("s1", "t1", "2026-05-01", 0, nil),
		schedule("s2", "t1", "2026-05-01", 1, nil),
		schedule("s3", "t1", "2026-05-01", 2, nil),
		schedule("other", "t1", "2026-05-02", 7, nil),
	)
	service := &ScheduleService{store: store}

	items, changed, err := service.Reorder(&models.ScheduleReorderRequest{
		TripID: "t1", Date: "2026-05-01", ActiveID: "s2", OverID: "s3",
	})

	assert.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, map[string]int{"s1": 0, "s3": 1, "s2": 2}, store.orderWrites)

	got := make([]string, len(items))
	for i, s := range items {
		got[i] = s.ID
	}
	assert.Equal(t, []string{"s1", "s3", "s2"}, got)

	// The other day's entry keeps its original number
	for _, s := range store.schedules {
		if s.ID == "other" {
			assert.Equal(t, int64(7), s.OrderNo)
		}
	}
}

func TestScheduleAdd_DefaultsOrderToCreationTime(t *testing.T) {
	store := newFakeScheduleStore()
	service := &ScheduleService{store: store}

	created, err := service.Add(&models.AddScheduleRequest{
		TripID: "t1", Title: "Check in", Date: "2026-05-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, created.CreatedAt, created.OrderNo)
	assert.Len(t, store.schedules, 1)
}

func TestScheduleAdd_RejectsBadDate(t *testing.T) {
	service := &ScheduleService{store: newFakeScheduleStore()}

	_, err := service.Add(&models.AddScheduleRequest{
		TripID: "t1", Title: "Check in", Date: "05/01/2026",
	})

	assert.Error(t, err)
}

func TestScheduleRemove_RequiresConfirmation(t *testing.T) {
	store := newFakeScheduleStore(schedule("s1", "t1", "2026-05-01", 0, nil))
	service := &ScheduleService{store: store}

	deleted, err := service.Remove("s1", false)

	assert.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = service.Remove("s1", true)

	assert.NoError(t, err)
	assert.True(t, deleted)
}
