package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func fieldPtr(s string) *string { return &s }

func validMedication() Medication {
	return Medication{
		Name:      fieldPtr("Aspirin"),
		Dosage:    fieldPtr("200mg"),
		Frequency: fieldPtr("twice"),
		Time:      fieldPtr("08:00"),
	}
}

func TestMedicationValidation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		mutate  func(*Medication)
		wantErr bool
	}{
		{"valid", func(m *Medication) {}, false},
		{"missing name", func(m *Medication) { m.Name = nil }, true},
		{"empty name", func(m *Medication) { m.Name = fieldPtr("") }, true},
		{"missing dosage", func(m *Medication) { m.Dosage = nil }, true},
		{"missing time", func(m *Medication) { m.Time = nil }, true},
		{"unknown frequency", func(m *Medication) { m.Frequency = fieldPtr("hourly") }, true},
		{"every_6_hours", func(m *Medication) { m.Frequency = fieldPtr("every_6_hours") }, false},
		{"as_needed", func(m *Medication) { m.Frequency = fieldPtr("as_needed") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMedication()
			tt.mutate(&m)
			err := validate.Struct(m)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
