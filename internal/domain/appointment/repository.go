package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentFilter struct {
	BarberID uint
	From     *time.Time
	To       *time.Time
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) ([]models.WorkingHour, error)

	ListBarberAppointments(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, error)

	// Revision changes on every write.
	Revision(ctx context.Context) uint64

	// Transaction runs fn with exclusive access to the store.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// View runs fn against a snapshot no writer can change meanwhile.
	View(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}

type SlotKey struct {
	BarberID  uint
	ServiceID uint
	Date      string
	Revision  uint64
}

type SlotCache interface {
	Get(key SlotKey) ([]string, bool)
	Store(key SlotKey, slots []string)
}
