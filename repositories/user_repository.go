package repositories

import (
	"context"

	"grocery-recipe/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	FindUsersByEmail(ctx context.Context, email string) ([]models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	result := r.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "could not insert user")
	}
	return &user, nil
}

// FindUsersByEmail メールアドレスの重複は許しているので複数件返ることがある
func (r *UserRepository) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	users := []models.User{}
	result := r.db.WithContext(ctx).Where("email = ?", email).Find(&users)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "could not find users")
	}
	return users, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "could not find user")
	}
	return &user, nil
}
