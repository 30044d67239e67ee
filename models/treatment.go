package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Treatment is a bookable appointment category with a fixed daily slot inventory.
type Treatment struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// AvailabilityView is a treatment with only the slots still open on a given date.
type AvailabilityView struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// Specialty is the name-only projection of a treatment.
type Specialty struct {
	Name string `bson:"name" json:"name"`
}
