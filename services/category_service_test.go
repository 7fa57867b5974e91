package services

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanbyul-dev/tripnote-backend/models"
)

type fakeCategoryStore struct {
	mu         sync.Mutex
	categories []models.ExpenseCategory
}

func newFakeCategoryStore(categories ...models.ExpenseCategory) *fakeCategoryStore {
	return &fakeCategoryStore{categories: categories}
}

func (f *fakeCategoryStore) ListByUser(userID string) ([]models.ExpenseCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ExpenseCategory
	for _, c := range f.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, iok := out[i].Position()
		pj, jok := out[j].Position()
		if iok != jok {
			return !iok
		}
		if iok && pi != pj {
			return pi < pj
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeCategoryStore) InsertAll(categories []*models.ExpenseCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range categories {
		f.categories = append(f.categories, *c)
	}
	return nil
}

func (f *fakeCategoryStore) Insert(c *models.ExpenseCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeCategoryStore) Update(c *models.ExpenseCategory) error { return nil }

func (f *fakeCategoryStore) Delete(categoryID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.categories {
		if c.ID == categoryID && c.UserID == userID {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryStore) UpdateDisplayOrder(categoryID string, order int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.categories {
		if f.categories[i].ID == categoryID {
			o := order
			f.categories[i].DisplayOrder = &o
		}
	}
	return nil
}

func TestCategoryList_BootstrapsDefaultsForNewUser(t *testing.T) {
	store := newFakeCategoryStore()
	service := &CategoryService{store: store}

	categories, err := service.List("u1")

	assert.NoError(t, err)
	assert.Len(t, categories, 7)

	names := make(map[string]bool)
	for _, c := range categories {
		names[c.Name] = true
		assert.Equal(t, "u1", c.UserID)
	}
	for _, expected := range []string{"Lodging", "Sightseeing", "Activity", "Food", "Transport", "Shopping", "Other"} {
		assert.True(t, names[expected], expected)
	}
}

func TestCategoryList_DoesNotBootstrapTwice(t *testing.T) {
	store := newFakeCategoryStore()
	service := &CategoryService{store: store}

	_, err := service.List("u1")
	assert.NoError(t, err)

	categories, err := service.List("u1")
	assert.NoError(t, err)
	assert.Len(t, categories, 7)
}

func TestCategoryList_UsersAreIsolated(t *testing.T) {
	store := newFakeCategoryStore()
	service := &CategoryService{store: store}

	first, _ := service.List("u1")
	second, _ := service.List("u2")

	assert.Len(t, first, 7)
	assert.Len(t, second, 7)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestCategoryAdd_RejectsBadColor(t *testing.T) {
	service := &CategoryService{store: newFakeCategoryStore()}

	_, err := service.Add("u1", &models.AddCategoryRequest{
		Name: "Souvenirs", BgColor: "red",
	})

	assert.Error(t, err)
}

func TestCategoryAdd_DefaultsColors(t *testing.T) {
	service := &CategoryService{store: newFakeCategoryStore()}

	category, err := service.Add("u1", &models.AddCategoryRequest{Name: "Souvenirs"})

	assert.NoError(t, err)
	assert.Equal(t, "#000000", category.BgColor)
	assert.Equal(t, "#ffffff", category.TextColor)
}

func TestCategoryRemove_RequiresConfirmation(t *testing.T) {
	store := newFakeCategoryStore(models.ExpenseCategory{ID: "c1", UserID: "u1", Name: "Food"})
	service := &CategoryService{store: store}

	deleted, err := service.Remove("c1", "u1", false)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, store.categories, 1)

	deleted, err = service.Remove("c1", "u1", true)

	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, store.categories)
}

func TestCategoryReorder_RenumbersUserList(t *testing.T) {
	store := newFakeCategoryStore(
		models.ExpenseCategory{ID: "c1", UserID: "u1", Name: "Food", DisplayOrder: pos(0)},
		models.ExpenseCategory{ID: "c2", UserID: "u1", Name: "Transport", DisplayOrder: pos(1)},
		models.ExpenseCategory{ID: "c3", UserID: "u1", Name: "Lodging", DisplayOrder: pos(2)},
	)
	service := &CategoryService{store: store}

	categories, changed, err := service.Reorder("u1", &models.CategoryReorderRequest{
		ActiveID: "c3", OverID: "c1",
	})

	assert.NoError(t, err)
	assert.True(t, changed)

	got := make([]string, len(categories))
	for i, c := range categories {
		got[i] = c.ID
		assert.Equal(t, i, *c.DisplayOrder)
	}
	assert.Equal(t, []string{"c3", "c1", "c2"}, got)
}
