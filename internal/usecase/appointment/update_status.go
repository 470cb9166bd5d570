package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type UpdateAppointmentStatus struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	loc     *time.Location
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	loc *time.Location,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:    repo,
		audit:   audit,
		metrics: m,
		loc:     loc,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, appointmentID, to)
}

func (uc *UpdateAppointmentStatus) apply(
	ctx context.Context,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrNotFound("appointment_not_found")
		}

		if err := domain.Transition(ap, to, timezone.NowIn(uc.loc)); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		out = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.StatusChanged(string(to))
	uc.audit.Dispatch(audit.Event{
		ShopID:   out.ShopID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: &out.ID,
	})

	return out, nil
}
