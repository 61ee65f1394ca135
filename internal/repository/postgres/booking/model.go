package booking

type BookingDB struct {
	ID                string
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

// editableColumns порядок совпадает с values() и scanTargets().
var editableColumns = []string{
	"email",
	"user_name",
	"user_number",
	"parcel_type",
	"parcel_weight",
	"price",
	"receiver_name",
	"receiver_number",
	"receiver_address",
	"requested_date",
	"approximate_date",
	"booking_date",
	"location_latitude",
	"location_longitude",
	"delivery_men_id",
	"status",
}

func (b *BookingDB) values() []interface{} {
	return []interface{}{
		b.Email,
		b.UserName,
		b.UserNumber,
		b.ParcelType,
		b.ParcelWeight,
		b.Price,
		b.ReceiverName,
		b.ReceiverNumber,
		b.ReceiverAddress,
		b.RequestedDate,
		b.ApproximateDate,
		b.BookingDate,
		b.LocationLatitude,
		b.LocationLongitude,
		b.DeliveryMenID,
		b.Status,
	}
}

func (b *BookingDB) scanTargets() []interface{} {
	return []interface{}{
		&b.ID,
		&b.Email,
		&b.UserName,
		&b.UserNumber,
		&b.ParcelType,
		&b.ParcelWeight,
		&b.Price,
		&b.ReceiverName,
		&b.ReceiverNumber,
		&b.ReceiverAddress,
		&b.RequestedDate,
		&b.ApproximateDate,
		&b.BookingDate,
		&b.LocationLatitude,
		&b.LocationLongitude,
		&b.DeliveryMenID,
		&b.Status,
	}
}
