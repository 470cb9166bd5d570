package handlers

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// RegistryStore holds the reference data appointments point at.
type RegistryStore interface {
	CreateService(ctx context.Context, svc *models.Service) error
	ListServices(ctx context.Context) ([]models.Service, error)

	CreateBarber(ctx context.Context, b *models.Barber) error
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	CreateWorkingHour(ctx context.Context, wh *models.WorkingHour) error
	ListBarberWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHour, error)

	CreateCustomer(ctx context.Context, c *models.Customer) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}
