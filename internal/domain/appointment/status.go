package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status = models.AppointmentStatus

const (
	StatusPending   = models.StatusPending
	StatusConfirmed = models.StatusConfirmed
	StatusCompleted = models.StatusCompleted
	StatusCancelled = models.StatusCancelled
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// IsActive reports whether an appointment with status s blocks its barber's time.
func IsActive(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return s, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Validations
// ===============================

// CanTransition never lets an inactive appointment become active again,
// so a transition cannot introduce an overlap.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusConfirmed
}
