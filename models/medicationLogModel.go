package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicationLog records that a medication was taken at a point in time.
// Entries are never updated in place; a correction is a delete and recreate.
type MedicationLog struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	MedicationID *string            `json:"medication_id" bson:"medication_id" validate:"required"`
	UserID       string             `json:"user_id" bson:"user_id"`
	TakenAt      time.Time          `json:"taken_at" bson:"taken_at"`
	Notes        string             `json:"notes"`
	LogID        string             `json:"log_id" bson:"log_id"`
}
