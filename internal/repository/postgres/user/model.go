package user

type UserDB struct {
	ID    string
	Email string
	Name  *string
	Type  *string
}
