package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC    *appointment.CreateAppointment
	statusUC    *appointment.UpdateAppointmentStatus
	cancelUC    *appointment.CancelAppointment
	completeUC  *appointment.CompleteAppointment
	listUC      *appointment.ListAppointments
	listMonthUC *appointment.ListAppointmentsByMonth
	slotsUC     *appointment.GetAvailability
	loc         *time.Location
}

func NewAppointmentHandler(
	createUC *appointment.CreateAppointment,
	statusUC *appointment.UpdateAppointmentStatus,
	cancelUC *appointment.CancelAppointment,
	completeUC *appointment.CompleteAppointment,
	listUC *appointment.ListAppointments,
	listMonthUC *appointment.ListAppointmentsByMonth,
	slotsUC *appointment.GetAvailability,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:    createUC,
		statusUC:    statusUC,
		cancelUC:    cancelUC,
		completeUC:  completeUC,
		listUC:      listUC,
		listMonthUC: listMonthUC,
		slotsUC:     slotsUC,
		loc:         loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ShopID     uint   `json:"shop_id"`
	BarberID   uint   `json:"barber_id" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	StartsAt   string `json:"starts_at" binding:"required"`

	DurationOverrideMin *int `json:"duration_override_min"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// SLOTS
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	barberID, ok := parseIDParam(c, "barber_id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required")
		return
	}

	serviceID, ok := parseOptionalIDQuery(c, "service_id")
	if !ok {
		return
	}
	if serviceID == 0 {
		httperr.BadRequest(c, "missing_service_id", "service_id is required")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.SlotListDTO{Slots: slots})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		ShopID:              req.ShopID,
		BarberID:            req.BarberID,
		CustomerID:          req.CustomerID,
		ServiceID:           req.ServiceID,
		StartsAt:            req.StartsAt,
		DurationOverrideMin: req.DurationOverrideMin,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap, h.loc))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	barberID, ok := parseOptionalIDQuery(c, "barber_id")
	if !ok {
		return
	}

	list, err := h.listUC.Execute(c.Request.Context(), c.Query("date"), barberID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID, ok := parseOptionalIDQuery(c, "barber_id")
	if !ok {
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	list, err := h.listMonthUC.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.listUC.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap, h.loc))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap, h.loc))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap, h.loc))
}
