package validator

import (
	"testing"
	"time"

	"reserbot/pkg/logger"
	"reserbot/pkg/model"
)

func newTestValidator() *ReservationValidator {
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewReservationValidator(log)
}

func validReservation() *model.Reservation {
	future := time.Now().AddDate(0, 0, 7).Format(model.FechaLayout)
	return &model.Reservation{
		Nombre:   "Ana García",
		Fecha:    future,
		Hora:     "10:30",
		Servicio: "corte",
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	v := newTestValidator()

	if verr := v.ValidateCreate(validReservation()); verr != nil {
		t.Fatalf("expected valid reservation, got: %v", verr)
	}
}

func TestValidateCreate_MissingFields(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name   string
		mutate func(*model.Reservation)
	}{
		{"missing nombre", func(r *model.Reservation) { r.Nombre = "" }},
		{"missing fecha", func(r *model.Reservation) { r.Fecha = "" }},
		{"missing hora", func(r *model.Reservation) { r.Hora = "" }},
		{"missing servicio", func(r *model.Reservation) { r.Servicio = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validReservation()
			tt.mutate(res)

			verr := v.ValidateCreate(res)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			if verr.Message != MsgAllFieldsRequired {
				t.Errorf("expected message %q, got %q", MsgAllFieldsRequired, verr.Message)
			}
		})
	}
}

func TestValidateCreate_NameTooShort(t *testing.T) {
	v := newTestValidator()

	res := validReservation()
	res.Nombre = "Al"

	verr := v.ValidateCreate(res)
	if verr == nil {
		t.Fatal("expected validation error, got nil")
	}
	if verr.Message != MsgNameTooShort {
		t.Errorf("expected message %q, got %q", MsgNameTooShort, verr.Message)
	}
	if verr.Field != "nombre" {
		t.Errorf("expected field nombre, got %q", verr.Field)
	}
}

func TestValidateCreate_MissingFieldWinsOverShortName(t *testing.T) {
	v := newTestValidator()

	res := validReservation()
	res.Nombre = "Al"
	res.Hora = ""

	verr := v.ValidateCreate(res)
	if verr == nil {
		t.Fatal("expected validation error, got nil")
	}
	if verr.Message != MsgAllFieldsRequired {
		t.Errorf("expected message %q, got %q", MsgAllFieldsRequired, verr.Message)
	}
}

func TestValidateCreate_PastDate(t *testing.T) {
	v := newTestValidator()

	res := validReservation()
	res.Fecha = time.Now().AddDate(0, 0, -1).Format(model.FechaLayout)

	verr := v.ValidateCreate(res)
	if verr == nil {
		t.Fatal("expected validation error, got nil")
	}
	if verr.Message != MsgPastDate {
		t.Errorf("expected message %q, got %q", MsgPastDate, verr.Message)
	}
}

func TestValidateCreate_TodayIsValid(t *testing.T) {
	v := newTestValidator()

	res := validReservation()
	res.Fecha = time.Now().Format(model.FechaLayout)

	if verr := v.ValidateCreate(res); verr != nil {
		t.Fatalf("reservation for today should be valid, got: %v", verr)
	}
}

func TestValidateCreate_InvalidFechaFormat(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name  string
		fecha string
	}{
		{"not a date", "mañana"},
		{"wrong layout", "31/12/2030"},
		{"impossible day", "2030-02-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validReservation()
			res.Fecha = tt.fecha

			verr := v.ValidateCreate(res)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			if verr.Message != MsgInvalidFecha {
				t.Errorf("expected message %q, got %q", MsgInvalidFecha, verr.Message)
			}
		})
	}
}
