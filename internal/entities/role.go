package entities

type Role int

const (
	RolePlain Role = iota
	RoleAdmin
	RoleDeliveryPerson
)

// Значения поля type в хранилище.
const (
	UserTypePlain          = "user"
	UserTypeAdmin          = "admin"
	UserTypeDeliveryPerson = "DeliveryMen"
)

// ParseRole неизвестные и пустые значения считаются обычным пользователем.
func ParseRole(userType string) Role {
	switch userType {
	case UserTypeAdmin:
		return RoleAdmin
	case UserTypeDeliveryPerson:
		return RoleDeliveryPerson
	default:
		return RolePlain
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return UserTypeAdmin
	case RoleDeliveryPerson:
		return UserTypeDeliveryPerson
	default:
		return UserTypePlain
	}
}
