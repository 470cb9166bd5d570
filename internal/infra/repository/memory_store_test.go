package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func at(day, h, m int) time.Time {
	return time.Date(2024, 6, day, h, m, 0, 0, time.UTC)
}

func TestMemoryStore_IDsArePerKindAndStartAtOne(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	svc := &models.Service{Name: "Cut", DurationMin: 30}
	b1 := &models.Barber{FullName: "A"}
	b2 := &models.Barber{FullName: "B"}
	if err := s.CreateService(ctx, svc); err != nil {
		t.Fatalf("create service: %v", err)
	}
	_ = s.CreateBarber(ctx, b1)
	_ = s.CreateBarber(ctx, b2)

	if svc.ID != 1 || b1.ID != 1 || b2.ID != 2 {
		t.Fatalf("unexpected ids: service=%d barbers=%d,%d", svc.ID, b1.ID, b2.ID)
	}
}

func TestMemoryStore_GetServiceNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.GetService(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_ListWorkingHoursFiltersByBarberAndWeekday(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.CreateWorkingHour(ctx, &models.WorkingHour{BarberID: 1, Weekday: 1, StartTime: "09:00", EndTime: "12:00"})
	_ = s.CreateWorkingHour(ctx, &models.WorkingHour{BarberID: 1, Weekday: 2, StartTime: "09:00", EndTime: "12:00"})
	_ = s.CreateWorkingHour(ctx, &models.WorkingHour{BarberID: 1, Weekday: 1, StartTime: "13:00", EndTime: "17:00"})
	_ = s.CreateWorkingHour(ctx, &models.WorkingHour{BarberID: 2, Weekday: 1, StartTime: "09:00", EndTime: "12:00"})

	hours, _ := s.ListWorkingHours(ctx, 1, 1)
	if len(hours) != 2 || hours[0].StartTime != "09:00" || hours[1].StartTime != "13:00" {
		t.Fatalf("unexpected hours %+v", hours)
	}

	all, _ := s.ListBarberWorkingHours(ctx, 1)
	if len(all) != 3 {
		t.Fatalf("expected 3 rows for barber 1, got %d", len(all))
	}
}

func TestMemoryStore_ListAppointmentsSortedAndFiltered(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.CreateAppointment(ctx, &models.Appointment{BarberID: 1, StartsAt: at(3, 15, 0), EndsAt: at(3, 15, 30)})
	_ = s.CreateAppointment(ctx, &models.Appointment{BarberID: 2, StartsAt: at(3, 9, 0), EndsAt: at(3, 9, 30)})
	_ = s.CreateAppointment(ctx, &models.Appointment{BarberID: 1, StartsAt: at(3, 10, 0), EndsAt: at(3, 10, 30)})
	_ = s.CreateAppointment(ctx, &models.Appointment{BarberID: 1, StartsAt: at(4, 8, 0), EndsAt: at(4, 8, 30)})

	all, _ := s.ListAppointments(ctx, domain.AppointmentFilter{})
	for i := 1; i < len(all); i++ {
		if all[i].StartsAt.Before(all[i-1].StartsAt) {
			t.Fatalf("appointments not sorted: %v before %v", all[i-1].StartsAt, all[i].StartsAt)
		}
	}

	from, to := at(3, 0, 0), at(4, 0, 0)
	day, _ := s.ListAppointments(ctx, domain.AppointmentFilter{BarberID: 1, From: &from, To: &to})
	if len(day) != 2 || day[0].ID != 3 || day[1].ID != 1 {
		t.Fatalf("unexpected filtered list %+v", day)
	}
}

func TestMemoryStore_AssertNoTimeConflict(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.CreateAppointment(ctx, &models.Appointment{
		BarberID: 1, StartsAt: at(3, 10, 0), EndsAt: at(3, 10, 30), Status: models.StatusConfirmed,
	})

	if err := s.AssertNoTimeConflict(ctx, 1, at(3, 10, 15), at(3, 10, 45)); !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := s.AssertNoTimeConflict(ctx, 1, at(3, 10, 30), at(3, 11, 0)); err != nil {
		t.Fatalf("touching interval must not conflict: %v", err)
	}
}

func TestMemoryStore_UpdateAppointmentAndRevision(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	ap := &models.Appointment{BarberID: 1, Status: models.StatusConfirmed}
	_ = s.CreateAppointment(ctx, ap)
	rev := s.Revision(ctx)

	ap.Status = models.StatusCancelled
	if err := s.UpdateAppointment(ctx, ap); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.Revision(ctx) == rev {
		t.Fatalf("revision must change on write")
	}

	got, _ := s.GetAppointment(ctx, ap.ID)
	if got.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}

	if err := s.UpdateAppointment(ctx, &models.Appointment{ID: 99}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_TransactionSerializesCheckThenAppend(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = s.Transaction(ctx, func(tx domain.Repository) error {
				if err := tx.AssertNoTimeConflict(ctx, 1, at(3, 10, 0), at(3, 10, 30)); err != nil {
					return err
				}
				return tx.CreateAppointment(ctx, &models.Appointment{
					BarberID: 1, StartsAt: at(3, 10, 0), EndsAt: at(3, 10, 30), Status: models.StatusConfirmed,
				})
			})
		}()
	}
	wg.Wait()

	all, _ := s.ListAppointments(ctx, domain.AppointmentFilter{})
	if len(all) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(all))
	}
}
