package service

import (
	"sync"
	"testing"

	"cityhop/internal/model"
	"cityhop/internal/slug"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSavedStore — хранилище в памяти для проверки логики переключения.
type fakeSavedStore struct {
	mu      sync.Mutex
	rows    map[string]model.SavedPlace // id -> строка
	calls   int
	failAll bool
	entered chan struct{} // закрывается при входе в Upsert (для теста single-flight)
	release chan struct{} // Upsert ждет этот канал, если он задан
}

func newFakeSavedStore() *fakeSavedStore {
	return &fakeSavedStore{rows: make(map[string]model.SavedPlace)}
}

func (f *fakeSavedStore) FindByUserAndKey(userID, placeKey string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAll {
		return "", false, assert.AnError
	}
	for id, row := range f.rows {
		if row.UserID == userID && row.PlaceKey == placeKey {
			return id, true, nil
		}
	}
	return "", false, nil
}

func (f *fakeSavedStore) Upsert(p *model.SavedPlace) (string, error) {
	if f.entered != nil {
		close(f.entered)
		f.entered = nil
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAll {
		return "", assert.AnError
	}
	for id, row := range f.rows {
		if row.UserID == p.UserID && row.PlaceKey == p.PlaceKey {
			f.rows[id] = *p
			return id, nil
		}
	}
	id := uuid.NewString()
	p.ID = id
	f.rows[id] = *p
	return id, nil
}

func (f *fakeSavedStore) DeleteByID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAll {
		return assert.AnError
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeSavedStore) ListByUser(userID string) ([]model.SavedPlace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAll {
		return nil, assert.AnError
	}
	places := []model.SavedPlace{}
	for _, row := range f.rows {
		if row.UserID == userID {
			places = append(places, row)
		}
	}
	return places, nil
}

func (f *fakeSavedStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testPlace() model.SavedPlace {
	return model.SavedPlace{
		PlaceKey:    slug.PlaceKey("Tokyo", "Tokyo Skytree"),
		Name:        "Tokyo Skytree",
		City:        "Tokyo",
		Country:     "Japan",
		Lat:         35.7101,
		Lon:         139.8107,
		Description: "634m broadcasting tower with observation decks.",
	}
}

func TestCheckSaved_NoSession(t *testing.T) {
	store := newFakeSavedStore()
	svc := NewSavedPlaceService(store)

	state, err := svc.CheckSaved("", "tokyo|tokyo-skytree")
	require.NoError(t, err)
	assert.False(t, state.Saved)
	assert.Empty(t, state.RowID)
	assert.Zero(t, store.callCount(), "без сессии хранилище не должно вызываться")
}

func TestToggle_NoSession(t *testing.T) {
	store := newFakeSavedStore()
	svc := NewSavedPlaceService(store)

	state, err := svc.Toggle("", SavedState{}, testPlace())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, state.Saved)
	assert.Zero(t, store.callCount())
}

func TestToggle_SaveThenUnsave(t *testing.T) {
	store := newFakeSavedStore()
	svc := NewSavedPlaceService(store)
	userID := uuid.NewString()

	state, err := svc.CheckSaved(userID, testPlace().PlaceKey)
	require.NoError(t, err)
	require.False(t, state.Saved)

	state, err = svc.Toggle(userID, state, testPlace())
	require.NoError(t, err)
	assert.True(t, state.Saved)
	assert.NotEmpty(t, state.RowID)

	places, err := svc.ListSaved(userID)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Tokyo Skytree", places[0].Name)
	assert.Equal(t, userID, places[0].UserID)

	state, err = svc.Toggle(userID, state, testPlace())
	require.NoError(t, err)
	assert.False(t, state.Saved)
	assert.Empty(t, state.RowID)

	places, err = svc.ListSaved(userID)
	require.NoError(t, err)
	assert.Empty(t, places, "после пары сохранить/убрать строк не остается")
}

func TestToggle_DoubleSaveLeavesSingleRow(t *testing.T) {
	store := newFakeSavedStore()
	svc := NewSavedPlaceService(store)
	userID := uuid.NewString()

	// два последовательных сохранения с устаревшим состоянием — upsert
	// по (user, place_key) не создает дубликата
	_, err := svc.Toggle(userID, SavedState{}, testPlace())
	require.NoError(t, err)
	_, err = svc.Toggle(userID, SavedState{}, testPlace())
	require.NoError(t, err)

	places, err := svc.ListSaved(userID)
	require.NoError(t, err)
	assert.Len(t, places, 1)
}

func TestToggle_SingleFlight(t *testing.T) {
	store := newFakeSavedStore()
	store.entered = make(chan struct{})
	store.release = make(chan struct{})
	entered := store.entered
	svc := NewSavedPlaceService(store)
	userID := uuid.NewString()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Toggle(userID, SavedState{}, testPlace())
		done <- err
	}()
	<-entered // первый toggle завис внутри хранилища

	// повторный вызов отклоняется сразу, без обращения к хранилищу
	state, err := svc.Toggle(userID, SavedState{}, testPlace())
	assert.ErrorIs(t, err, ErrToggleInProgress)
	assert.False(t, state.Saved)

	close(store.release)
	require.NoError(t, <-done)

	// после завершения первого вызова защелка снята
	state, err = svc.CheckSaved(userID, testPlace().PlaceKey)
	require.NoError(t, err)
	assert.True(t, state.Saved)
	_, err = svc.Toggle(userID, state, testPlace())
	assert.NoError(t, err)
}

func TestToggle_StorageFailureKeepsState(t *testing.T) {
	store := newFakeSavedStore()
	store.failAll = true
	svc := NewSavedPlaceService(store)
	userID := uuid.NewString()

	prev := SavedState{Saved: true, RowID: "row-1"}
	state, err := svc.Toggle(userID, prev, testPlace())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, prev, state, "при ошибке состояние не меняется")
}
