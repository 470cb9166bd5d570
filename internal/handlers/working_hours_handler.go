package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type WorkingHoursHandler struct {
	store  RegistryStore
	audit  *audit.Dispatcher
	shopID uint
}

func NewWorkingHoursHandler(store RegistryStore, audit *audit.Dispatcher, shopID uint) *WorkingHoursHandler {
	return &WorkingHoursHandler{store: store, audit: audit, shopID: shopID}
}

// Overlapping windows for the same barber and weekday are accepted.
type CreateWorkingHourRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Weekday   int    `json:"weekday" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

func (h *WorkingHoursHandler) Create(c *gin.Context) {
	var req CreateWorkingHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// zero-padded HH:MM compares lexically
	if req.StartTime >= req.EndTime {
		httperr.BadRequest(c, "invalid_time_range", "Start time must be before end time")
		return
	}

	wh := models.WorkingHour{
		BarberID:  req.BarberID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.store.CreateWorkingHour(c.Request.Context(), &wh); err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, h.shopID, "working_hour_created", "working_hour", &wh.ID, map[string]any{
		"barber_id": wh.BarberID,
		"weekday":   wh.Weekday,
	})

	httpresp.Created(c, wh)
}

func (h *WorkingHoursHandler) ListByBarber(c *gin.Context) {
	barberID, ok := parseIDParam(c, "barber_id")
	if !ok {
		return
	}

	hours, err := h.store.ListBarberWorkingHours(c.Request.Context(), barberID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, hours)
}
