package token

import "errors"

var (
	ErrMissingToken  = errors.New("missing token")
	ErrInvalidToken  = errors.New("invalid token")
	ErrEmptySecret   = errors.New("empty signing secret")
	ErrInvalidClaims = errors.New("invalid claims payload")
)
