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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ShopID     uint
	BarberID   uint
	CustomerID uint
	ServiceID  uint

	StartsAt string

	// nil means "use the service duration"; an explicit 0 is rejected.
	DurationOverrideMin *int
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo          domain.Repository
	audit         *audit.Dispatcher
	metrics       *metrics.Metrics
	loc           *time.Location
	defaultShopID uint
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	loc *time.Location,
	defaultShopID uint,
) *CreateAppointment {
	return &CreateAppointment{
		repo:          repo,
		audit:         audit,
		metrics:       m,
		loc:           loc,
		defaultShopID: defaultShopID,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Service
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	// --------------------------------------------------
	// 2. Start / duration / end
	// --------------------------------------------------
	start, err := timezone.ParseTimestamp(in.StartsAt, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_starts_at")
	}

	durationMin := service.DurationMin
	if in.DurationOverrideMin != nil {
		durationMin = *in.DurationOverrideMin
	}
	if durationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)

	shopID := in.ShopID
	if shopID == 0 {
		shopID = uc.defaultShopID
	}

	ap := &models.Appointment{
		ShopID:     shopID,
		BarberID:   in.BarberID,
		CustomerID: in.CustomerID,
		ServiceID:  service.ID,
		StartsAt:   start,
		EndsAt:     end,
		Status:     domain.InitialStatus(),
	}

	// --------------------------------------------------
	// 3. Conflict check + insert, atomically
	// --------------------------------------------------
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoTimeConflict(ctx, in.BarberID, start, end); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			uc.metrics.AppointmentConflict()
			uc.audit.Dispatch(audit.Event{
				ShopID: shopID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"start":     start,
					"end":       end,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.metrics.AppointmentCreated()
	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id":  ap.BarberID,
			"service_id": ap.ServiceID,
		},
	})

	return ap, nil
}
