package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type Deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Store   *infraRepo.MemoryStore
	Cache   domain.SlotCache // nil disables slot caching
	Metrics *metrics.Metrics
	Audit   *audit.Dispatcher
}

// New builds an engine with the global middleware and every route attached.
func New(d Deps) (*gin.Engine, error) {
	if err := validators.Register(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.AccessLogMiddleware(d.Logger, d.Metrics))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, d)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.App.Timezone)
	shopID := cfg.App.ShopID

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Store,
		d.Audit,
		d.Metrics,
		loc,
		shopID,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		d.Store,
		d.Audit,
		d.Metrics,
		loc,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(updateStatusUC)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(updateStatusUC)

	listAppointmentsUC := ucAppointment.NewListAppointments(d.Store, loc)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(d.Store, loc)

	availabilityUC := ucAppointment.NewGetAvailability(
		d.Store,
		d.Cache,
		d.Metrics,
		loc,
		cfg.FirstWeekday(),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(d.Store, d.Audit, shopID)
	barberHandler := handlers.NewBarberHandler(d.Store, d.Audit, shopID)
	customerHandler := handlers.NewCustomerHandler(d.Store, d.Audit, shopID)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.Store, d.Audit, shopID)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
		listAppointmentsByMonthUC,
		availabilityUC,
		loc,
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", handlers.Health)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// REGISTRY
	// ======================================================
	r.POST("/services", serviceHandler.Create)
	r.GET("/services", serviceHandler.List)

	r.POST("/barbers", barberHandler.Create)
	r.GET("/barbers", barberHandler.List)
	r.GET("/barbers/:barber_id/slots", appointmentHandler.Slots)

	r.POST("/working-hours", workingHoursHandler.Create)
	r.GET("/working-hours/:barber_id", workingHoursHandler.ListByBarber)

	r.POST("/customers", customerHandler.Create)
	r.GET("/customers", customerHandler.List)

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	appointments := r.Group("/appointments")
	{
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/month", appointmentHandler.ListByMonth)
		appointments.GET("/:id", appointmentHandler.Get)
		appointments.PATCH("/:id/status", appointmentHandler.UpdateStatus)
		appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
		appointments.PATCH("/:id/complete", appointmentHandler.Complete)
	}
}
