package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// User 登録時に送られた任意のフィールドはProfileにそのまま保存する
type User struct {
	ID       string                 `gorm:"primaryKey;type:varchar(36)"`
	Email    string                 `gorm:"not null;index"`
	Password string                 `gorm:"not null"`
	Profile  map[string]interface{} `gorm:"type:text;serializer:json"`
}

// ReservedUserFields Profileに入れないキー
var ReservedUserFields = []string{"_id", "id", "email", "password", "__v"}

func (u *User) Validate() error {
	var problems []string
	if strings.TrimSpace(u.Email) == "" {
		problems = append(problems, "email is required")
	}
	if u.Password == "" {
		problems = append(problems, "password is required")
	}
	if len(problems) > 0 {
		return errors.Wrap(ErrValidation, "user: "+strings.Join(problems, ", "))
	}
	return nil
}

// MarshalJSON Profileの項目を_id/emailと同じ階層に出力する。パスワードは出力しない
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Profile)+2)
	for k, v := range u.Profile {
		out[k] = v
	}
	out["_id"] = u.ID
	out["email"] = u.Email
	return json.Marshal(out)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return u.Validate()
}
