package repositories

import (
	"context"
	"time"

	"grocery-recipe/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ITokenRepository interface {
	AddBlacklistedToken(ctx context.Context, token string, expiresAt int64) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	CleanExpiredTokens(ctx context.Context) (int64, error)
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

// AddBlacklistedToken 同じトークンで2回ログアウトしてもエラーにしない
func (r *TokenRepository) AddBlacklistedToken(ctx context.Context, token string, expiresAt int64) error {
	blacklistedToken := models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&blacklistedToken)
	if result.Error != nil {
		return errors.Wrap(result.Error, "could not blacklist token")
	}
	return nil
}

func (r *TokenRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.BlacklistedToken{}).Where("token = ?", token).Count(&count)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "could not check token blacklist")
	}
	return count > 0, nil
}

// CleanExpiredTokens 削除した件数を返す
func (r *TokenRepository) CleanExpiredTokens(ctx context.Context) (int64, error) {
	now := time.Now().Unix()
	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "could not clean expired tokens")
	}
	return result.RowsAffected, nil
}
