package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CompleteAppointment struct {
	status *UpdateAppointmentStatus
}

func NewCompleteAppointment(status *UpdateAppointmentStatus) *CompleteAppointment {
	return &CompleteAppointment{status: status}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.status.apply(ctx, appointmentID, domain.StatusCompleted)
}
