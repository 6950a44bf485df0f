package model

import "time"

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session представляет активную сессию пользователя (вне БД).
type Session struct {
	UserID string
	Email  string
}
