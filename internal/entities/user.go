package entities

type User struct {
	ID          string
	Email       string
	DisplayName *string
	Type        *string
}

func (u *User) Role() Role {
	if u == nil || u.Type == nil {
		return RolePlain
	}
	return ParseRole(*u.Type)
}

type UserModify struct {
	Email       *string
	DisplayName *string
	Type        *string
}
