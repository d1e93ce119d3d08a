package dto

// LoginInput 空の値や文字列以外の値はバリデーションエラーではなく認証失敗として扱う
type LoginInput struct {
	Email    interface{} `json:"email"`
	Password interface{} `json:"password"`
}

// Credentials 文字列でない値は空文字として返す
func (i LoginInput) Credentials() (email, password string) {
	email, _ = i.Email.(string)
	password, _ = i.Password.(string)
	return email, password
}

type LoginResponse struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Token   string      `json:"token,omitempty"`
}
