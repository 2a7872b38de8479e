package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves one slot of a treatment for a patient on a date. The date
// is an opaque calendar-day label supplied by the client; the server never
// parses it. Uniqueness is enforced on (treatment_name, date, patient_name) —
// the slot is deliberately not part of the key, so a patient gets at most one
// booking per treatment per day.
type Booking struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TreatmentName string    `db:"treatment_name" json:"treatmentName"`
	Date          string    `db:"date" json:"date"`
	Slot          string    `db:"slot" json:"slot"`
	PatientName   string    `db:"patient_name" json:"patientName"`
	PatientEmail  string    `db:"patient_email" json:"patientEmail"`
	Phone         string    `db:"phone" json:"phone,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CreateBookingRequest is the payload accepted by POST /bookings.
type CreateBookingRequest struct {
	TreatmentName string `json:"treatmentName" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Slot          string `json:"slot" binding:"required"`
	PatientName   string `json:"patientName" binding:"required"`
	PatientEmail  string `json:"patientEmail" binding:"required,email"`
	Phone         string `json:"phone" binding:"phone"`
}

// BookingResult reports the outcome of a booking attempt. When Created is
// false, Booking holds the already-existing record for client display.
type BookingResult struct {
	Created bool     `json:"success"`
	Booking *Booking `json:"booking"`
}
