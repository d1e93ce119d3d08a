package dto_test

import (
	"encoding/json"
	"testing"

	"grocery-recipe/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		body string
		want float64
	}{
		{`{"quantity":2}`, 2},
		{`{"quantity":1.5}`, 1.5},
		{`{"quantity":"3"}`, 3},
		{`{"quantity":" 0.5 "}`, 0.5},
	}
	for _, tt := range tests {
		var input dto.CreateItemInput
		require.NoError(t, json.Unmarshal([]byte(tt.body), &input), tt.body)
		require.NotNil(t, input.Quantity)
		assert.Equal(t, tt.want, float64(*input.Quantity))
	}

	var input dto.CreateItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":null}`), &input))
	assert.Nil(t, input.Quantity)

	assert.Error(t, json.Unmarshal([]byte(`{"quantity":"lots"}`), &input))
	assert.Error(t, json.Unmarshal([]byte(`{"quantity":true}`), &input))
}

func TestLoginInputCredentials(t *testing.T) {
	var input dto.LoginInput
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@example.com","password":"pw"}`), &input))
	email, password := input.Credentials()
	assert.Equal(t, "a@example.com", email)
	assert.Equal(t, "pw", password)

	input = dto.LoginInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"email":123,"password":true}`), &input))
	email, password = input.Credentials()
	assert.Empty(t, email)
	assert.Empty(t, password)
}
