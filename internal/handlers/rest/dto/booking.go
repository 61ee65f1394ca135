package dto

import (
	"shipease/internal/entities"
)

// Booking отсутствующие значения не попадают в JSON.
type Booking struct {
	ID                string  `json:"_id,omitempty"`
	Email             *string `json:"email,omitempty"`
	UserName          *string `json:"userName,omitempty"`
	UserNumber        *string `json:"userNumber,omitempty"`
	ParcelType        *string `json:"parcelType,omitempty"`
	ParcelWeight      Number  `json:"parcelWeight,omitzero"`
	Price             Number  `json:"price,omitzero"`
	ReceiverName      *string `json:"receiverName,omitempty"`
	ReceiverNumber    *string `json:"receiverNumber,omitempty"`
	ReceiverAddress   *string `json:"receiverAddress,omitempty"`
	RequestedDate     *string `json:"requestedDate,omitempty"`
	ApproximateDate   *string `json:"approximateDate,omitempty"`
	BookingDate       *string `json:"bookingDate,omitempty"`
	LocationLatitude  Number  `json:"locationLatitude,omitzero"`
	LocationLongitude Number  `json:"locationLongitude,omitzero"`
	DeliveryMenID     *string `json:"deliveryMenId,omitempty"`
	Status            *string `json:"status,omitempty"`
}

// BookingStatusUpdate тело PUT /allBookings и PUT /allDeliveryBookings.
type BookingStatusUpdate struct {
	Status          *string `json:"status"`
	ApproximateDate *string `json:"approximateDate"`
	DeliveryMenID   *string `json:"deliveryMenId"`
}

func FromBooking(b *entities.Booking) Booking {
	return Booking{
		ID:                b.ID,
		Email:             b.Email,
		UserName:          b.UserName,
		UserNumber:        b.UserNumber,
		ParcelType:        b.ParcelType,
		ParcelWeight:      NewNumber(b.ParcelWeight),
		Price:             NewNumber(b.Price),
		ReceiverName:      b.ReceiverName,
		ReceiverNumber:    b.ReceiverNumber,
		ReceiverAddress:   b.ReceiverAddress,
		RequestedDate:     b.RequestedDate,
		ApproximateDate:   b.ApproximateDate,
		BookingDate:       b.BookingDate,
		LocationLatitude:  NewNumber(b.LocationLatitude),
		LocationLongitude: NewNumber(b.LocationLongitude),
		DeliveryMenID:     b.DeliveryMenID,
		Status:            b.Status,
	}
}

// FromBookings пустой список кодируется как [], не null.
func FromBookings(bookings []entities.Booking) []Booking {
	res := make([]Booking, 0, len(bookings))
	for i := range bookings {
		res = append(res, FromBooking(&bookings[i]))
	}
	return res
}

// ToBookingFields _id из тела игнорируется, идентификатор задает хранилище или путь.
func (b *Booking) ToBookingFields() entities.BookingFields {
	return entities.BookingFields{
		Email:             b.Email,
		UserName:          b.UserName,
		UserNumber:        b.UserNumber,
		ParcelType:        b.ParcelType,
		ParcelWeight:      b.ParcelWeight.Float64(),
		Price:             b.Price.Float64(),
		ReceiverName:      b.ReceiverName,
		ReceiverNumber:    b.ReceiverNumber,
		ReceiverAddress:   b.ReceiverAddress,
		RequestedDate:     b.RequestedDate,
		ApproximateDate:   b.ApproximateDate,
		BookingDate:       b.BookingDate,
		LocationLatitude:  b.LocationLatitude.Float64(),
		LocationLongitude: b.LocationLongitude.Float64(),
		DeliveryMenID:     b.DeliveryMenID,
		Status:            b.Status,
	}
}

func (u *BookingStatusUpdate) ToModify() entities.BookingStatusModify {
	return entities.BookingStatusModify{
		Status:          u.Status,
		ApproximateDate: u.ApproximateDate,
		DeliveryMenID:   u.DeliveryMenID,
	}
}
