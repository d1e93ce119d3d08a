package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrValidation モデルのバリデーションエラーはすべてこれをラップする
var ErrValidation = errors.New("validation failed")

// Item 買い物リストの1行。Emailは所有者の絞り込みにだけ使う（外部キーではない）
type Item struct {
	ID       string  `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	ItemName string  `json:"itemname" gorm:"column:itemname;not null"`
	Category string  `json:"category" gorm:"not null"`
	Quantity float64 `json:"quantity" gorm:"not null"`
	Email    string  `json:"email" gorm:"not null;index"`
}

// Validate 文字列をトリムしてから各項目をチェックする
func (i *Item) Validate() error {
	i.ItemName = strings.TrimSpace(i.ItemName)
	i.Category = strings.TrimSpace(i.Category)

	var problems []string
	if i.ItemName == "" {
		problems = append(problems, "itemname is required")
	}
	if i.Category == "" {
		problems = append(problems, "category is required")
	}
	if math.IsNaN(i.Quantity) || math.IsInf(i.Quantity, 0) {
		problems = append(problems, "quantity must be a number")
	} else if i.Quantity < 0 {
		problems = append(problems, "quantity must not be negative")
	}
	if strings.TrimSpace(i.Email) == "" {
		problems = append(problems, "email is required")
	}

	if len(problems) > 0 {
		return errors.Wrap(ErrValidation, "item: "+strings.Join(problems, ", "))
	}
	return nil
}

// GroceryEntry "name (quantity)" の形式の文字列
func (i Item) GroceryEntry() string {
	return fmt.Sprintf("%s (%s)", i.ItemName, strconv.FormatFloat(i.Quantity, 'f', -1, 64))
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i *Item) BeforeSave(tx *gorm.DB) error {
	return i.Validate()
}
