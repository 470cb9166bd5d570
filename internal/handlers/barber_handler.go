package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberHandler struct {
	store  RegistryStore
	audit  *audit.Dispatcher
	shopID uint
}

func NewBarberHandler(store RegistryStore, audit *audit.Dispatcher, shopID uint) *BarberHandler {
	return &BarberHandler{store: store, audit: audit, shopID: shopID}
}

type CreateBarberRequest struct {
	FullName string `json:"full_name" binding:"required"`
	ColorHex string `json:"color_hex" binding:"omitempty,hexcolor"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	color := req.ColorHex
	if color == "" {
		color = models.DefaultBarberColor
	}

	b := models.Barber{
		FullName: req.FullName,
		ColorHex: color,
	}

	if err := h.store.CreateBarber(c.Request.Context(), &b); err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, h.shopID, "barber_created", "barber", &b.ID, nil)

	httpresp.Created(c, b)
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.store.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, barbers)
}
