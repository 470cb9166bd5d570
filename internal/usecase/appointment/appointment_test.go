package appointment

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type fixture struct {
	store     *repository.MemoryStore
	metrics   *metrics.Metrics
	slots     *GetAvailability
	create    *CreateAppointment
	status    *UpdateAppointmentStatus
	cancel    *CancelAppointment
	complete  *CompleteAppointment
	list      *ListAppointments
	listMonth *ListAppointmentsByMonth
	serviceID uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	loc := timezone.Location(timezone.DefaultTimezone)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := repository.NewMemoryStore()
	m := metrics.New()
	dispatcher := audit.NewDispatcher(logger, 16)
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	slotCache, err := cache.NewSlotsLRU(16, logger)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}

	svc := &models.Service{Name: "Haircut", DurationMin: 30}
	if err := store.CreateService(ctx, svc); err != nil {
		t.Fatalf("create service: %v", err)
	}
	// 2024-06-03 is a Monday.
	if err := store.CreateWorkingHour(ctx, &models.WorkingHour{
		BarberID: 1, Weekday: 1, StartTime: "09:00", EndTime: "10:00",
	}); err != nil {
		t.Fatalf("create working hour: %v", err)
	}

	status := NewUpdateAppointmentStatus(store, dispatcher, m, loc)

	return &fixture{
		store:     store,
		metrics:   m,
		slots:     NewGetAvailability(store, slotCache, m, loc, time.Monday),
		create:    NewCreateAppointment(store, dispatcher, m, loc, 1),
		status:    status,
		cancel:    NewCancelAppointment(status),
		complete:  NewCompleteAppointment(status),
		list:      NewListAppointments(store, loc),
		listMonth: NewListAppointmentsByMonth(store, loc),
		serviceID: svc.ID,
	}
}

func (f *fixture) book(t *testing.T, startsAt string) (*models.Appointment, error) {
	t.Helper()
	return f.create.Execute(context.Background(), CreateAppointmentInput{
		BarberID:   1,
		CustomerID: 1,
		ServiceID:  f.serviceID,
		StartsAt:   startsAt,
	})
}

func (f *fixture) availability(t *testing.T) []string {
	t.Helper()
	slots, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: f.serviceID,
		Date:      "2024-06-03",
	})
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	return slots
}

func TestGetAvailability_OneHourWindow(t *testing.T) {
	f := newFixture(t)

	got := f.availability(t)
	want := []string{"2024-06-03T09:00:00+03:00", "2024-06-03T09:30:00+03:00"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGetAvailability_IdempotentAndCached(t *testing.T) {
	f := newFixture(t)

	first := f.availability(t)
	second := f.availability(t)
	if len(first) != len(second) {
		t.Fatalf("results differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("results differ: %v vs %v", first, second)
		}
	}
}

func TestGetAvailability_UnknownServiceIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 99, Date: "2024-06-03",
	})
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: f.serviceID, Date: "03/06/2024",
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestGetAvailability_NoWorkingHoursIsEmpty(t *testing.T) {
	f := newFixture(t)

	slots, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: f.serviceID, Date: "2024-06-04",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", slots)
	}
}

func TestCreateAppointment_UsesServiceDuration(t *testing.T) {
	f := newFixture(t)

	ap, err := f.book(t, "2024-06-03T09:00:00+03:00")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ap.ID != 1 || ap.ShopID != 1 || ap.Status != models.StatusConfirmed {
		t.Fatalf("unexpected appointment %+v", ap)
	}
	if ap.EndsAt.Sub(ap.StartsAt) != 30*time.Minute {
		t.Fatalf("expected 30m duration, got %s", ap.EndsAt.Sub(ap.StartsAt))
	}
}

func TestCreateAppointment_DurationOverride(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	override := 45
	ap, err := f.create.Execute(ctx, CreateAppointmentInput{
		BarberID: 1, ServiceID: f.serviceID,
		StartsAt: "2024-06-03T09:00:00", DurationOverrideMin: &override,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ap.EndsAt.Sub(ap.StartsAt) != 45*time.Minute {
		t.Fatalf("expected 45m, got %s", ap.EndsAt.Sub(ap.StartsAt))
	}

	zero := 0
	_, err = f.create.Execute(ctx, CreateAppointmentInput{
		BarberID: 1, ServiceID: f.serviceID,
		StartsAt: "2024-06-03T11:00:00", DurationOverrideMin: &zero,
	})
	if !httperr.IsBusiness(err, "invalid_duration") {
		t.Fatalf("expected invalid_duration, got %v", err)
	}
}

func TestCreateAppointment_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		BarberID: 1, ServiceID: 99, StartsAt: "2024-06-03T09:00:00",
	})
	if !httperr.IsBusiness(err, "invalid_service") {
		t.Fatalf("expected invalid_service, got %v", err)
	}

	if _, err := f.book(t, "next monday"); !httperr.IsBusiness(err, "invalid_starts_at") {
		t.Fatalf("expected invalid_starts_at, got %v", err)
	}
}

func TestCreateAppointment_ConflictLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t)

	if _, err := f.book(t, "2024-06-03T10:00:00+03:00"); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	_, err := f.book(t, "2024-06-03T10:15:00+03:00")
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	all, _ := f.list.Execute(context.Background(), "", 0)
	if len(all) != 1 {
		t.Fatalf("expected one appointment after conflict, got %d", len(all))
	}
}

func TestCreateAppointment_TouchingBoundariesSucceed(t *testing.T) {
	f := newFixture(t)

	if _, err := f.book(t, "2024-06-03T10:00:00+03:00"); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := f.book(t, "2024-06-03T10:30:00+03:00"); err != nil {
		t.Fatalf("touching booking: %v", err)
	}
}

func TestCreateAppointment_BookedSlotDisappears(t *testing.T) {
	f := newFixture(t)

	f.availability(t)
	if _, err := f.book(t, "2024-06-03T09:00:00+03:00"); err != nil {
		t.Fatalf("book: %v", err)
	}

	got := f.availability(t)
	if len(got) != 1 || got[0] != "2024-06-03T09:30:00+03:00" {
		t.Fatalf("expected only 09:30 left, got %v", got)
	}
}

func TestCancelAppointment_FreesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book(t, "2024-06-03T09:00:00+03:00")
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	cancelled, err := f.cancel.Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != models.StatusCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("unexpected cancelled appointment %+v", cancelled)
	}

	if got := f.availability(t); len(got) != 2 {
		t.Fatalf("expected both slots back, got %v", got)
	}
	if _, err := f.book(t, "2024-06-03T09:00:00+03:00"); err != nil {
		t.Fatalf("rebooking cancelled slot: %v", err)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, _ := f.book(t, "2024-06-03T09:00:00+03:00")

	if _, err := f.status.Execute(ctx, ap.ID, "bogus"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
	if _, err := f.status.Execute(ctx, 99, "cancelled"); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	done, err := f.complete.Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatalf("completed_at not stamped")
	}

	if _, err := f.status.Execute(ctx, ap.ID, "cancelled"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state from terminal status, got %v", err)
	}
}

func TestListAppointments_SortedAndFiltered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, ts := range []string{
		"2024-06-03T15:00:00+03:00",
		"2024-06-03T09:00:00+03:00",
		"2024-06-04T08:00:00+03:00",
		"2024-06-03T12:00:00+03:00",
	} {
		if _, err := f.book(t, ts); err != nil {
			t.Fatalf("book %s: %v", ts, err)
		}
	}

	day, err := f.list.Execute(ctx, "2024-06-03", 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{
		"2024-06-03T09:00:00+03:00",
		"2024-06-03T12:00:00+03:00",
		"2024-06-03T15:00:00+03:00",
	}
	if len(day) != len(want) {
		t.Fatalf("expected %d appointments, got %d", len(want), len(day))
	}
	for i := range want {
		if day[i].StartsAt != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], day[i].StartsAt)
		}
	}

	if _, err := f.list.Execute(ctx, "june", 0); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	other, _ := f.list.Execute(ctx, "", 2)
	if len(other) != 0 {
		t.Fatalf("expected nothing for barber 2, got %d", len(other))
	}
}

func TestListAppointments_Get(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, _ := f.book(t, "2024-06-03T09:00:00+03:00")

	got, err := f.list.Get(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EndsAt != "2024-06-03T09:30:00+03:00" {
		t.Fatalf("unexpected ends_at %s", got.EndsAt)
	}

	if _, err := f.list.Get(ctx, 42); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListAppointmentsByMonth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _ = f.book(t, "2024-06-03T09:00:00+03:00")
	_, _ = f.book(t, "2024-07-01T09:00:00+03:00")

	june, err := f.listMonth.Execute(ctx, 1, 2024, 6)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if len(june) != 1 {
		t.Fatalf("expected one appointment in june, got %d", len(june))
	}

	if _, err := f.listMonth.Execute(ctx, 1, 2024, 13); !httperr.IsBusiness(err, "invalid_month") {
		t.Fatalf("expected invalid_month, got %v", err)
	}
}
