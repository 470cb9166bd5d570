package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var ErrNotFound = errors.New("record not found")

// MemoryStore keeps every collection in process memory. Nothing survives a
// restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data *memoryData
}

type idCounters struct {
	service     uint
	barber      uint
	workingHour uint
	customer    uint
	appointment uint
}

// memoryData is the unlocked view handed to Transaction callbacks.
type memoryData struct {
	services     []models.Service
	barbers      []models.Barber
	workingHours []models.WorkingHour
	customers    []models.Customer
	appointments []models.Appointment

	ids      idCounters
	revision uint64
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: &memoryData{now: time.Now},
	}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (s *MemoryStore) CreateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ids.service++
	svc.ID = s.data.ids.service
	svc.CreatedAt = s.data.now()
	s.data.services = append(s.data.services, *svc)
	s.data.revision++
	return nil
}

func (s *MemoryStore) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Service{}, s.data.services...), nil
}

func (s *MemoryStore) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.GetService(ctx, serviceID)
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (s *MemoryStore) CreateBarber(ctx context.Context, b *models.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ids.barber++
	b.ID = s.data.ids.barber
	b.CreatedAt = s.data.now()
	s.data.barbers = append(s.data.barbers, *b)
	s.data.revision++
	return nil
}

func (s *MemoryStore) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Barber{}, s.data.barbers...), nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (s *MemoryStore) CreateWorkingHour(ctx context.Context, wh *models.WorkingHour) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ids.workingHour++
	wh.ID = s.data.ids.workingHour
	wh.CreatedAt = s.data.now()
	s.data.workingHours = append(s.data.workingHours, *wh)
	s.data.revision++
	return nil
}

func (s *MemoryStore) ListBarberWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.WorkingHour{}
	for _, wh := range s.data.workingHours {
		if wh.BarberID == barberID {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListWorkingHours(ctx context.Context, barberID uint, weekday int) ([]models.WorkingHour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.ListWorkingHours(ctx, barberID, weekday)
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (s *MemoryStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ids.customer++
	c.ID = s.data.ids.customer
	c.CreatedAt = s.data.now()
	s.data.customers = append(s.data.customers, *c)
	s.data.revision++
	return nil
}

func (s *MemoryStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Customer{}, s.data.customers...), nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (s *MemoryStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.CreateAppointment(ctx, ap)
}

func (s *MemoryStore) AssertNoTimeConflict(ctx context.Context, barberID uint, start, end time.Time) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.AssertNoTimeConflict(ctx, barberID, start, end)
}

func (s *MemoryStore) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.GetAppointment(ctx, appointmentID)
}

func (s *MemoryStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.UpdateAppointment(ctx, ap)
}

func (s *MemoryStore) ListBarberAppointments(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.ListBarberAppointments(ctx, barberID)
}

func (s *MemoryStore) ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.ListAppointments(ctx, filter)
}

func (s *MemoryStore) Revision(ctx context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.revision
}

// Transaction holds the write lock for the whole of fn, which makes
// check-then-append sequences atomic.
func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

func (s *MemoryStore) View(ctx context.Context, fn func(tx domain.Repository) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.data)
}

// --------------------------------------------------
// Unlocked implementation
// --------------------------------------------------

func (d *memoryData) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	for _, svc := range d.services {
		if svc.ID == serviceID {
			out := svc
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memoryData) ListWorkingHours(ctx context.Context, barberID uint, weekday int) ([]models.WorkingHour, error) {
	out := []models.WorkingHour{}
	for _, wh := range d.workingHours {
		if wh.BarberID == barberID && wh.Weekday == weekday {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (d *memoryData) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	d.ids.appointment++
	ap.ID = d.ids.appointment
	ap.CreatedAt = d.now()
	d.appointments = append(d.appointments, *ap)
	d.revision++
	return nil
}

func (d *memoryData) AssertNoTimeConflict(ctx context.Context, barberID uint, start, end time.Time) error {
	if domain.HasConflict(d.appointments, barberID, start, end) {
		return httperr.ErrConflict("time_conflict")
	}
	return nil
}

func (d *memoryData) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range d.appointments {
		if ap.ID == appointmentID {
			out := ap
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (d *memoryData) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range d.appointments {
		if d.appointments[i].ID == ap.ID {
			d.appointments[i] = *ap
			d.revision++
			return nil
		}
	}
	return ErrNotFound
}

func (d *memoryData) ListBarberAppointments(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range d.appointments {
		if ap.BarberID == barberID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (d *memoryData) ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range d.appointments {
		if filter.BarberID != 0 && ap.BarberID != filter.BarberID {
			continue
		}
		if filter.From != nil && ap.StartsAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !ap.StartsAt.Before(*filter.To) {
			continue
		}
		out = append(out, ap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out, nil
}

func (d *memoryData) Revision(ctx context.Context) uint64 {
	return d.revision
}

func (d *memoryData) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(d)
}

func (d *memoryData) View(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(d)
}

// Compile-time check
var (
	_ domain.Repository = (*MemoryStore)(nil)
	_ domain.Repository = (*memoryData)(nil)
)
