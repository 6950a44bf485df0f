package service

import (
	"fmt"
	"sync"

	"cityhop/internal/model"
	"cityhop/internal/slug"
)

// SavedPlaceStore описывает хранилище сохраненных мест (внедряется при создании
// сервиса; в продакшене — репозиторий поверх Postgres).
type SavedPlaceStore interface {
	FindByUserAndKey(userID, placeKey string) (string, bool, error)
	Upsert(p *model.SavedPlace) (string, error)
	DeleteByID(id string) error
	ListByUser(userID string) ([]model.SavedPlace, error)
}

// SavedState — текущее состояние флага «сохранено» для конкретного места.
// RowID заполнен только когда Saved=true; он нужен для последующего удаления.
type SavedState struct {
	Saved bool
	RowID string
}

// SavedPlaceService содержит логику переключения сохраненных мест.
// Каждая операция — один запрос к хранилищу, без повторов и без
// оптимистичных изменений состояния.
type SavedPlaceService struct {
	store SavedPlaceStore

	mu       sync.Mutex
	inFlight map[string]struct{} // userID|placeKey -> переключение выполняется
}

// NewSavedPlaceService создает новый сервис сохраненных мест.
func NewSavedPlaceService(store SavedPlaceStore) *SavedPlaceService {
	return &SavedPlaceService{
		store:    store,
		inFlight: make(map[string]struct{}),
	}
}

// CheckSaved проверяет, сохранено ли место у пользователя. Пустой userID
// означает «не авторизован»: место считается несохраненным, ошибки нет,
// обращения к хранилищу не происходит.
func (s *SavedPlaceService) CheckSaved(userID, placeKey string) (SavedState, error) {
	if userID == "" {
		return SavedState{}, nil
	}
	id, found, err := s.store.FindByUserAndKey(userID, placeKey)
	if err != nil {
		return SavedState{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return SavedState{Saved: found, RowID: id}, nil
}

// Toggle переключает состояние «сохранено» для места. Принимает текущее
// состояние и возвращает новое; при любой ошибке возвращается состояние
// без изменений. Повторный вызов, пока предыдущий не завершился,
// отклоняется без обращения к хранилищу.
func (s *SavedPlaceService) Toggle(userID string, state SavedState, place model.SavedPlace) (SavedState, error) {
	if userID == "" {
		return state, ErrAuthRequired
	}
	if place.PlaceKey == "" {
		place.PlaceKey = slug.PlaceKey(place.City, place.Name)
	}

	key := userID + "|" + place.PlaceKey
	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return state, ErrToggleInProgress
	}
	s.inFlight[key] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	if state.Saved && state.RowID != "" {
		if err := s.store.DeleteByID(state.RowID); err != nil {
			return state, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return SavedState{}, nil
	}

	place.UserID = userID
	id, err := s.store.Upsert(&place)
	if err != nil {
		return state, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return SavedState{Saved: true, RowID: id}, nil
}

// ListSaved возвращает сохраненные места пользователя, новые первыми.
func (s *SavedPlaceService) ListSaved(userID string) ([]model.SavedPlace, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	places, err := s.store.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return places, nil
}
