package entities

import "time"

// Claims проверенный payload токена.
type Claims struct {
	Email     string
	Payload   map[string]any
	IssuedAt  time.Time
	ExpiresAt time.Time
}
