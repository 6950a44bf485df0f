package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cityhop/internal/model"
	"cityhop/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService отвечает за регистрацию и вход пользователей по email/паролю.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService создает новый сервис аутентификации. Секрет подписи токенов
// передается явно из конфигурации, а не читается из окружения.
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register создает нового пользователя с bcrypt-хэшем пароля.
func (s *AuthService) Register(email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("не удалось захэшировать пароль: %w", err)
	}
	user := &model.User{Email: email, PasswordHash: string(hash)}
	id, err := s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// Login проверяет пару email/пароль и возвращает пользователя и токен сессии.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
