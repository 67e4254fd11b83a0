package auth

import "errors"

var (
	// ErrInvalidToken возвращается при некорректном или неподписанном токене
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrExpiredToken возвращается при просроченном токене
	ErrExpiredToken = errors.New("auth: token has expired")

	// ErrNoSession возвращается, когда в контексте запроса нет сессии
	ErrNoSession = errors.New("auth: no session in context")
)
