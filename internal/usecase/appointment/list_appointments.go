package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

// Execute filters by barber when barberID != 0 and by local day when date
// is set. The result is ordered by start time.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
	barberID uint,
) ([]dto.AppointmentDTO, error) {

	filter := domain.AppointmentFilter{BarberID: barberID}

	if date != "" {
		start, end, err := timezone.DayBounds(date, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		filter.From = &start
		filter.To = &end
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments, uc.loc), nil
}

func (uc *ListAppointments) Get(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	out := dto.FromAppointment(ap, uc.loc)
	return &out, nil
}
