package dto

import (
	"shipease/internal/entities"
)

type User struct {
	ID    string  `json:"_id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
	Type  *string `json:"type,omitempty"`
}

type UserRegister struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
	Type  *string `json:"type"`
}

func (u *UserRegister) ToModify() entities.UserModify {
	return entities.UserModify{
		Email:       u.Email,
		DisplayName: u.Name,
		Type:        u.Type,
	}
}

func FromUsers(users []entities.User) []User {
	res := make([]User, 0, len(users))
	for _, u := range users {
		res = append(res, User{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.DisplayName,
			Type:  u.Type,
		})
	}
	return res
}
