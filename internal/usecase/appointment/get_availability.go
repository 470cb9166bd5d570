package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo         domain.Repository
	cache        domain.SlotCache
	metrics      *metrics.Metrics
	loc          *time.Location
	firstWeekday time.Weekday
}

// NewGetAvailability accepts a nil cache, which disables caching.
func NewGetAvailability(
	repo domain.Repository,
	cache domain.SlotCache,
	m *metrics.Metrics,
	loc *time.Location,
	firstWeekday time.Weekday,
) *GetAvailability {
	return &GetAvailability{
		repo:         repo,
		cache:        cache,
		metrics:      m,
		loc:          loc,
		firstWeekday: firstWeekday,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	dayStart, _, err := timezone.DayBounds(in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	weekday := timezone.WeekdayNumber(dayStart, uc.firstWeekday)
	duration := time.Duration(service.DurationMin) * time.Minute

	var slots []string
	hit := false

	err = uc.repo.View(ctx, func(tx domain.Repository) error {
		key := domain.SlotKey{
			BarberID:  in.BarberID,
			ServiceID: in.ServiceID,
			Date:      in.Date,
			Revision:  tx.Revision(ctx),
		}

		if uc.cache != nil {
			if cached, ok := uc.cache.Get(key); ok {
				slots, hit = cached, true
				return nil
			}
		}

		hours, err := tx.ListWorkingHours(ctx, in.BarberID, weekday)
		if err != nil {
			return err
		}

		windows, err := domain.Windows(dayStart, hours, uc.loc)
		if err != nil {
			return httperr.ErrBusiness("invalid_working_hours")
		}

		booked, err := tx.ListBarberAppointments(ctx, in.BarberID)
		if err != nil {
			return err
		}

		starts := domain.Slots(windows, duration, in.BarberID, booked)

		slots = make([]string, 0, len(starts))
		for _, s := range starts {
			slots = append(slots, timezone.FormatSlot(s, uc.loc))
		}

		if uc.cache != nil {
			uc.cache.Store(key, slots)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.SlotQuery(hit)
	return slots, nil
}
