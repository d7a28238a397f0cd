package model

import (
	"time"
)

// FechaLayout is the calendar-date format reservations are submitted with.
const FechaLayout = "2006-01-02"

// Reservation keeps the Spanish field names of the public API. The store
// assigns the ID on insert; created_at is set by the repository.
type Reservation struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty"`
	Nombre    string    `json:"nombre" bson:"nombre" validate:"required,min=3"`
	Fecha     string    `json:"fecha" bson:"fecha" validate:"required"`
	Hora      string    `json:"hora" bson:"hora" validate:"required"`
	Servicio  string    `json:"servicio" bson:"servicio" validate:"required"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty" validate:"omitempty"`
}
