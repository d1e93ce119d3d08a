package models

import "time"

// BlacklistedToken ログアウト済みのJWT。ExpiresAtを過ぎた行は削除してよい
type BlacklistedToken struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null;uniqueIndex"`
	ExpiresAt int64  `gorm:"not null;index"`
	CreatedAt time.Time
}
