package booking

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingDoc отсутствующие поля не пишутся в документ при вставке.
type BookingDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Email             *string            `bson:"email,omitempty"`
	UserName          *string            `bson:"userName,omitempty"`
	UserNumber        *string            `bson:"userNumber,omitempty"`
	ParcelType        *string            `bson:"parcelType,omitempty"`
	ParcelWeight      *float64           `bson:"parcelWeight,omitempty"`
	Price             *float64           `bson:"price,omitempty"`
	ReceiverName      *string            `bson:"receiverName,omitempty"`
	ReceiverNumber    *string            `bson:"receiverNumber,omitempty"`
	ReceiverAddress   *string            `bson:"receiverAddress,omitempty"`
	RequestedDate     *string            `bson:"requestedDate,omitempty"`
	ApproximateDate   *string            `bson:"approximateDate,omitempty"`
	BookingDate       *string            `bson:"bookingDate,omitempty"`
	LocationLatitude  *float64           `bson:"locationLatitude,omitempty"`
	LocationLongitude *float64           `bson:"locationLongitude,omitempty"`
	DeliveryMenID     *string            `bson:"deliveryMenId,omitempty"`
	Status            *string            `bson:"status,omitempty"`
}

// replaceSet все редактируемые поля, nil пишется как null.
func (d *BookingDoc) replaceSet() bson.D {
	return bson.D{
		{Key: "email", Value: d.Email},
		{Key: "userName", Value: d.UserName},
		{Key: "userNumber", Value: d.UserNumber},
		{Key: "parcelType", Value: d.ParcelType},
		{Key: "parcelWeight", Value: d.ParcelWeight},
		{Key: "price", Value: d.Price},
		{Key: "receiverName", Value: d.ReceiverName},
		{Key: "receiverNumber", Value: d.ReceiverNumber},
		{Key: "receiverAddress", Value: d.ReceiverAddress},
		{Key: "requestedDate", Value: d.RequestedDate},
		{Key: "approximateDate", Value: d.ApproximateDate},
		{Key: "bookingDate", Value: d.BookingDate},
		{Key: "locationLatitude", Value: d.LocationLatitude},
		{Key: "locationLongitude", Value: d.LocationLongitude},
		{Key: "deliveryMenId", Value: d.DeliveryMenID},
		{Key: "status", Value: d.Status},
	}
}

type statusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}
