package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CancelAppointment struct {
	status *UpdateAppointmentStatus
}

func NewCancelAppointment(status *UpdateAppointmentStatus) *CancelAppointment {
	return &CancelAppointment{status: status}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.status.apply(ctx, appointmentID, domain.StatusCancelled)
}
