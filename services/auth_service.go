package services

import (
	"context"
	"time"

	"grocery-recipe/models"
	"grocery-recipe/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidToken 不正・期限切れ・ログアウト済みのトークン
var ErrInvalidToken = errors.New("invalid token")

type LoginResult struct {
	Users []models.User
	// 署名鍵が未設定なら空
	Token string
}

type IAuthService interface {
	Register(ctx context.Context, fields map[string]interface{}) (*models.User, error)
	Login(ctx context.Context, email string, password string) (*LoginResult, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
	Logout(ctx context.Context, tokenString string) error
}

type AuthService struct {
	repository      repositories.IUserRepository
	tokenRepository repositories.ITokenRepository
	hasher          *Hasher
	secretKey       []byte
	tokenTTL        time.Duration
}

func NewAuthService(
	repository repositories.IUserRepository,
	tokenRepository repositories.ITokenRepository,
	hasher *Hasher,
	secretKey string,
	tokenTTL time.Duration,
) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		hasher:          hasher,
		secretKey:       []byte(secretKey),
		tokenTTL:        tokenTTL,
	}
}

// Register 送られたフィールドをすべて保存する。emailとpasswordは文字列のみ、passwordはハッシュ化する
func (s *AuthService) Register(ctx context.Context, fields map[string]interface{}) (*models.User, error) {
	email, err := stringField(fields, "email")
	if err != nil {
		return nil, err
	}
	password, err := stringField(fields, "password")
	if err != nil {
		return nil, err
	}

	profile := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		profile[k] = v
	}
	for _, k := range models.ReservedUserFields {
		delete(profile, k)
	}

	user := models.User{Email: email, Profile: profile}
	if password != "" {
		hashedPassword, err := s.hasher.Hash(password)
		if err != nil {
			return nil, errors.Wrap(err, "could not hash password")
		}
		user.Password = hashedPassword
	}
	return s.repository.CreateUser(ctx, user)
}

func stringField(fields map[string]interface{}, key string) (string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(models.ErrValidation, "user: %s must be a string", key)
	}
	return s, nil
}

// Login メールアドレスとパスワードが一致するユーザーをすべて返す。一致しなくてもエラーにはしない
func (s *AuthService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	result := &LoginResult{Users: []models.User{}}
	if email == "" || password == "" {
		return result, nil
	}

	foundUsers, err := s.repository.FindUsersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	for _, user := range foundUsers {
		if s.hasher.Verify(user.Password, password) {
			result.Users = append(result.Users, user)
		}
	}

	if len(result.Users) > 0 && len(s.secretKey) > 0 {
		token, err := s.createToken(result.Users[0])
		if err != nil {
			return nil, err
		}
		result.Token = token
	}
	return result, nil
}

func (s *AuthService) createToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errors.Wrap(err, "could not sign token")
	}
	return tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (jwt.MapClaims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	return claims, nil
}

func (s *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	// トークンがブラックリストに含まれているかチェック
	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, errors.Wrap(ErrInvalidToken, "token is blacklisted")
	}

	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return nil, errors.Wrap(ErrInvalidToken, "token has no subject")
	}
	user, err := s.repository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Wrap(ErrInvalidToken, "user not found")
	}
	return user, nil
}

// Logout トークンを有効期限までブラックリストに入れる
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.tokenTTL).Unix()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Unix()
	}
	return s.tokenRepository.AddBlacklistedToken(ctx, tokenString, expiresAt)
}
