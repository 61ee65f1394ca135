package booking

import (
	"shipease/internal/entities"
)

func ToDomain(d *BookingDoc) *entities.Booking {
	if d == nil {
		return nil
	}

	return &entities.Booking{
		ID: d.ID.Hex(),
		BookingFields: entities.BookingFields{
			Email:             d.Email,
			UserName:          d.UserName,
			UserNumber:        d.UserNumber,
			ParcelType:        d.ParcelType,
			ParcelWeight:      d.ParcelWeight,
			Price:             d.Price,
			ReceiverName:      d.ReceiverName,
			ReceiverNumber:    d.ReceiverNumber,
			ReceiverAddress:   d.ReceiverAddress,
			RequestedDate:     d.RequestedDate,
			ApproximateDate:   d.ApproximateDate,
			BookingDate:       d.BookingDate,
			LocationLatitude:  d.LocationLatitude,
			LocationLongitude: d.LocationLongitude,
			DeliveryMenID:     d.DeliveryMenID,
			Status:            d.Status,
		},
	}
}

func FromDomainFields(f *entities.BookingFields) *BookingDoc {
	if f == nil {
		return &BookingDoc{}
	}

	return &BookingDoc{
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

func ToDomainList(docs []BookingDoc) []entities.Booking {
	if len(docs) == 0 {
		return []entities.Booking{}
	}

	result := make([]entities.Booking, len(docs))
	for i := range docs {
		result[i] = *ToDomain(&docs[i])
	}
	return result
}
