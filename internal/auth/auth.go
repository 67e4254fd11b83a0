package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session данные аутентифицированного пользователя
// Используются только для предзаполнения полей координатора,
// никакие решения об авторизации на них не строятся.
type Session struct {
	Name  string
	Email string
}

// Claims структура claims сессионного токена
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет сессионные токены (HS256)
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewManager создает новый менеджер сессий
func NewManager(secret string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// GenerateToken выпускает подписанный токен для пользователя
//
// Своего endpoint'а выдачи токенов у сервиса нет: токены координаторам
// выписывает портал колледжа с тем же секретом. Метод нужен служебным
// утилитам и тестам, поэтому он асимметричен ParseToken.
func (m *Manager) GenerateToken(name, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает сессию
func (m *Manager) ParseToken(tokenString string) (*Session, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return &Session{
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}

type sessionContextKey struct{}

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext достает сессию из контекста запроса
func SessionFromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(sessionContextKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}
