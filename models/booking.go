package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's claim on one slot of one treatment for one date.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment       string             `bson:"treatment" json:"treatment" binding:"required"`
	Patient         string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Email           string             `bson:"email" json:"email" binding:"required"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate" binding:"required"` // opaque calendar-day key
	Slot            string             `bson:"slot" json:"slot" binding:"required"`
	Price           float64            `bson:"price" json:"price"`
	Paid            bool               `bson:"paid" json:"paid"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// AdmissionResult is returned for every booking request, accepted or not.
type AdmissionResult struct {
	Admitted   bool   `json:"admitted"`
	Message    string `json:"message,omitempty"`
	InsertedID string `json:"insertedId,omitempty"`
}
