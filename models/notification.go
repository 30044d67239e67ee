package models

// BookingConfirmationPayload is the task payload sent after a booking is admitted.
type BookingConfirmationPayload struct {
	BookingID       string  `json:"bookingId"`
	Email           string  `json:"email"`
	Patient         string  `json:"patient,omitempty"`
	Treatment       string  `json:"treatment"`
	AppointmentDate string  `json:"appointmentDate"`
	Slot            string  `json:"slot"`
	Price           float64 `json:"price"`
}
