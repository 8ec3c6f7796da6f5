package repository

import (
	"errors"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user data access. Read-only: accounts are owned by the main
// application.
type UserRepository interface {
	FindByID(id string) (*domain.User, error)
	SummariesByIDs(ids []string) (map[string]domain.UserSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SummariesByIDs(ids []string) (map[string]domain.UserSummary, error) {
	result := make(map[string]domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []domain.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		result[users[i].ID] = users[i].ToSummary()
	}
	return result, nil
}
