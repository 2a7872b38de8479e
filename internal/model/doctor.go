package model

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a staff profile managed by administrators.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Specialty string    `db:"specialty" json:"specialty"`
	ImageURL  string    `db:"image_url" json:"img,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateDoctorRequest is the payload accepted by POST /doctors.
type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty" binding:"required"`
	ImageURL  string `json:"img"`
}
