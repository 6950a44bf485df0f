package service

import (
	"cityhop/internal/model"
	"cityhop/internal/repository"
)

// UserService содержит бизнес-логику, связанную с пользователями.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService создает новый сервис пользователей.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID возвращает пользователя по ID (обертка над репозиторием).
func (s *UserService) GetByID(id string) (*model.User, error) {
	return s.userRepo.GetByID(id)
}
