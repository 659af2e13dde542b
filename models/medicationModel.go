package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medication is one drug a user takes on a schedule. The frequency values
// mirror the options offered by the mobile client.
type Medication struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         *string            `json:"name" validate:"required,min=1,max=100"`
	Dosage       *string            `json:"dosage" validate:"required,min=1,max=100"`
	Frequency    *string            `json:"frequency" validate:"required,eq=once|eq=twice|eq=thrice|eq=every_4_hours|eq=every_6_hours|eq=every_8_hours|eq=as_needed"`
	Time         *string            `json:"time" validate:"required"`
	Notes        string             `json:"notes"`
	UserID       string             `json:"user_id" bson:"user_id"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
	MedicationID string             `json:"medication_id" bson:"medication_id"`
}
