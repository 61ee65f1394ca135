package token

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"shipease/internal/entities"
)

// Lifetime фиксированное время жизни токена, refresh не предусмотрен.
const Lifetime = 10 * time.Hour

const (
	claimEmail     = "email"
	claimExpiresAt = "exp"
	claimIssuedAt  = "iat"
)

type Service struct {
	secret []byte
	now    func() time.Time
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(secret string, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	s := &Service{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue подписывает произвольный payload, exp и iat всегда выставляются сервером.
func (s *Service) Issue(payload map[string]any) (string, error) {
	now := s.now()

	claims := make(jwt.MapClaims, len(payload)+2)
	maps.Copy(claims, payload)
	claims[claimIssuedAt] = jwt.NewNumericDate(now)
	claims[claimExpiresAt] = jwt.NewNumericDate(now.Add(Lifetime))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Verify(tokenString string) (*entities.Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return toEntity(claims)
}

func toEntity(claims jwt.MapClaims) (*entities.Claims, error) {
	res := &entities.Claims{
		Payload: make(map[string]any, len(claims)),
	}

	for k, v := range claims {
		switch k {
		case claimExpiresAt, claimIssuedAt:
			continue
		default:
			res.Payload[k] = v
		}
	}

	if raw, ok := claims[claimEmail]; ok {
		email, isString := raw.(string)
		if !isString {
			return nil, fmt.Errorf("%w: %w: email is not a string", ErrInvalidToken, ErrInvalidClaims)
		}
		res.Email = email
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	res.ExpiresAt = exp.Time

	iat, err := claims.GetIssuedAt()
	if err == nil && iat != nil {
		res.IssuedAt = iat.Time
	}

	return res, nil
}
