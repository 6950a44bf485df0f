package model

import "time"

// SavedPlace представляет сохраненное пользователем место (снимок данных каталога
// на момент сохранения; последующие изменения каталога сюда не попадают).
type SavedPlace struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	PlaceKey    string    `db:"place_key"` // составной ключ slug(город)|slug(место)
	Name        string    `db:"name"`
	City        string    `db:"city"`
	Country     string    `db:"country"`
	Lat         float64   `db:"lat"`
	Lon         float64   `db:"lon"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
