package repository

import (
	"fmt"

	"cityhop/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRepository обеспечивает доступ к аккаунтам пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя. Возвращает ID созданного пользователя.
func (r *UserRepository) Create(user *model.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING id`
	var id string
	err := r.db.QueryRow(query, user.ID, user.Email, user.PasswordHash).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}

// GetByEmail ищет пользователя по email.
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE email=$1", email)
	if err != nil {
		// sqlx.Get возвращает ошибку, если не найдено (sql.ErrNoRows и др.)
		return nil, err
	}
	return &user, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
