package booking_status_changed

import "shipease/internal/entities"

// statusChangedEvent сообщение топика booking.status.changed.
type statusChangedEvent struct {
	BookingID       string  `json:"booking_id"`
	Status          string  `json:"status"`
	ApproximateDate *string `json:"approximate_date,omitempty"`
	DeliveryMenID   *string `json:"delivery_men_id,omitempty"`
}

// withAssignment событие меняет не только статус, а значит это решение администратора.
func (e statusChangedEvent) withAssignment() bool {
	return e.ApproximateDate != nil || e.DeliveryMenID != nil
}

func (e statusChangedEvent) toModify() entities.BookingStatusModify {
	return entities.BookingStatusModify{
		Status:          &e.Status,
		ApproximateDate: e.ApproximateDate,
		DeliveryMenID:   e.DeliveryMenID,
	}
}
