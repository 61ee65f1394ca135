package booking

import (
	"shipease/internal/entities"
)

func ToDomain(b *BookingDB) *entities.Booking {
	if b == nil {
		return nil
	}

	return &entities.Booking{
		ID: b.ID,
		BookingFields: entities.BookingFields{
			Email:             b.Email,
			UserName:          b.UserName,
			UserNumber:        b.UserNumber,
			ParcelType:        b.ParcelType,
			ParcelWeight:      b.ParcelWeight,
			Price:             b.Price,
			ReceiverName:      b.ReceiverName,
			ReceiverNumber:    b.ReceiverNumber,
			ReceiverAddress:   b.ReceiverAddress,
			RequestedDate:     b.RequestedDate,
			ApproximateDate:   b.ApproximateDate,
			BookingDate:       b.BookingDate,
			LocationLatitude:  b.LocationLatitude,
			LocationLongitude: b.LocationLongitude,
			DeliveryMenID:     b.DeliveryMenID,
			Status:            b.Status,
		},
	}
}

func FromDomainFields(f *entities.BookingFields) *BookingDB {
	if f == nil {
		return &BookingDB{}
	}

	return &BookingDB{
		Email:             f.Email,
		UserName:          f.UserName,
		UserNumber:        f.UserNumber,
		ParcelType:        f.ParcelType,
		ParcelWeight:      f.ParcelWeight,
		Price:             f.Price,
		ReceiverName:      f.ReceiverName,
		ReceiverNumber:    f.ReceiverNumber,
		ReceiverAddress:   f.ReceiverAddress,
		RequestedDate:     f.RequestedDate,
		ApproximateDate:   f.ApproximateDate,
		BookingDate:       f.BookingDate,
		LocationLatitude:  f.LocationLatitude,
		LocationLongitude: f.LocationLongitude,
		DeliveryMenID:     f.DeliveryMenID,
		Status:            f.Status,
	}
}

func ToDomainList(bookingsDB []BookingDB) []entities.Booking {
	if len(bookingsDB) == 0 {
		return []entities.Booking{}
	}

	result := make([]entities.Booking, len(bookingsDB))
	for i := range bookingsDB {
		result[i] = *ToDomain(&bookingsDB[i])
	}
	return result
}
