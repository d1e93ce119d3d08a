package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Number JSONの数値と数値文字列 ("2", " 1.5 ") のどちらも受け付ける
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return errors.Errorf("cast to number failed for value %q", s)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Wrap(err, "cast to number failed")
	}
	*n = Number(f)
	return nil
}

type CreateItemInput struct {
	ItemName string  `json:"itemname"`
	Category string  `json:"category"`
	Quantity *Number `json:"quantity"`
	Email    string  `json:"email"`
}

type UpdateItemInput struct {
	ItemName *string `json:"itemname"`
	Category *string `json:"category"`
	Quantity *Number `json:"quantity"`
	Email    *string `json:"email"`
}

type MyItemsInput struct {
	Email string `json:"email"`
}
