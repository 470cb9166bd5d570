package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type AppointmentDTO struct {
	ID          uint    `json:"id"`
	ShopID      uint    `json:"shop_id"`
	BarberID    uint    `json:"barber_id"`
	CustomerID  uint    `json:"customer_id"`
	ServiceID   uint    `json:"service_id"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	Status      string  `json:"status"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type SlotListDTO struct {
	Slots []string `json:"slots"`
}

func FromAppointment(ap *models.Appointment, loc *time.Location) AppointmentDTO {
	out := AppointmentDTO{
		ID:         ap.ID,
		ShopID:     ap.ShopID,
		BarberID:   ap.BarberID,
		CustomerID: ap.CustomerID,
		ServiceID:  ap.ServiceID,
		StartsAt:   timezone.FormatSlot(ap.StartsAt, loc),
		EndsAt:     timezone.FormatSlot(ap.EndsAt, loc),
		Status:     string(ap.Status),
	}
	if ap.CancelledAt != nil {
		s := timezone.FormatSlot(*ap.CancelledAt, loc)
		out.CancelledAt = &s
	}
	if ap.CompletedAt != nil {
		s := timezone.FormatSlot(*ap.CompletedAt, loc)
		out.CompletedAt = &s
	}
	return out
}

func FromAppointments(aps []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i], loc))
	}
	return out
}
