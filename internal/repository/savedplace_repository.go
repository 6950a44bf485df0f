package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"cityhop/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SavedPlaceRepository обеспечивает доступ к сохраненным местам пользователей
// в удаленном хранилище (Postgres).
type SavedPlaceRepository struct {
	db *sqlx.DB
}

// NewSavedPlaceRepository создает новый репозиторий сохраненных мест.
func NewSavedPlaceRepository(db *sqlx.DB) *SavedPlaceRepository {
	return &SavedPlaceRepository{db: db}
}

// FindByUserAndKey ищет запись по паре (пользователь, ключ места).
// Отсутствие записи — не ошибка: возвращается found=false.
func (r *SavedPlaceRepository) FindByUserAndKey(userID, placeKey string) (string, bool, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM saved_places WHERE user_id=$1 AND place_key=$2", userID, placeKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ошибка при поиске сохраненного места: %w", err)
	}
	return id, true, nil
}

// Upsert вставляет снимок места или заменяет существующий по (user_id, place_key).
// Возвращает ID строки.
func (r *SavedPlaceRepository) Upsert(p *model.SavedPlace) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO saved_places (id, user_id, place_key, name, city, country, lat, lon, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (user_id, place_key) DO UPDATE SET
	              name=EXCLUDED.name, city=EXCLUDED.city, country=EXCLUDED.country,
	              lat=EXCLUDED.lat, lon=EXCLUDED.lon, description=EXCLUDED.description
	          RETURNING id`
	var id string
	err := r.db.QueryRow(query,
		p.ID, p.UserID, p.PlaceKey, p.Name, p.City, p.Country, p.Lat, p.Lon, p.Description,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("не удалось сохранить место: %w", err)
	}
	return id, nil
}

// DeleteByID удаляет запись по ID. Удаление несуществующей записи — no-op.
func (r *SavedPlaceRepository) DeleteByID(id string) error {
	_, err := r.db.Exec("DELETE FROM saved_places WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить сохраненное место: %w", err)
	}
	return nil
}

// ListByUser возвращает сохраненные места пользователя, новые первыми.
func (r *SavedPlaceRepository) ListByUser(userID string) ([]model.SavedPlace, error) {
	places := []model.SavedPlace{}
	err := r.db.Select(&places,
		"SELECT * FROM saved_places WHERE user_id=$1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сохраненных мест: %w", err)
	}
	return places, nil
}
