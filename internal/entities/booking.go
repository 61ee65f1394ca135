package entities

// BookingFields единый список редактируемых полей посылки.
// Используется при создании, чтении и полной замене, nil означает отсутствие значения.
type BookingFields struct {
	Email             *string
	UserName          *string
	UserNumber        *string
	ParcelType        *string
	ParcelWeight      *float64
	Price             *float64
	ReceiverName      *string
	ReceiverNumber    *string
	ReceiverAddress   *string
	RequestedDate     *string
	ApproximateDate   *string
	BookingDate       *string
	LocationLatitude  *float64
	LocationLongitude *float64
	DeliveryMenID     *string
	Status            *string
}

type Booking struct {
	ID string
	BookingFields
}

// BookingStatusModify частичное обновление статуса, даты и назначения курьера.
type BookingStatusModify struct {
	Status          *string
	ApproximateDate *string
	DeliveryMenID   *string
}

func (m BookingStatusModify) IsEmpty() bool {
	return m.Status == nil && m.ApproximateDate == nil && m.DeliveryMenID == nil
}

// BookingFilter пустые поля не участвуют в фильтрации.
type BookingFilter struct {
	Email         *string
	DeliveryMenID *string
	Status        *string
}

const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusInTransit = "in-transit"
	BookingStatusDelivered = "delivered"
	BookingStatusCancelled = "cancelled"

	// BookingStatusNone ключ статистики для посылок без статуса.
	BookingStatusNone = "none"
)

type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}
