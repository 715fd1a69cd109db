package auth

import (
	"context"
	"errors"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u Users) error
	GetUserByEmail(ctx context.Context, email string) (Users, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (Users, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (s *userRepository) CreateUser(ctx context.Context, u Users) error {
	err := s.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Duplicate("email already registered")
	}
	return err
}

func (s *userRepository) GetUserByEmail(ctx context.Context, email string) (Users, error) {
	var user Users
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return Users{}, err
	}
	return user, nil
}

func (s *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (Users, error) {
	var user Users
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return Users{}, err
	}
	return user, nil
}
