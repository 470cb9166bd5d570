package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceHandler struct {
	store  RegistryStore
	audit  *audit.Dispatcher
	shopID uint
}

func NewServiceHandler(store RegistryStore, audit *audit.Dispatcher, shopID uint) *ServiceHandler {
	return &ServiceHandler{store: store, audit: audit, shopID: shopID}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	DurationMin int             `json:"duration_min" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price must not be negative")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	if err := h.store.CreateService(c.Request.Context(), &svc); err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, h.shopID, "service_created", "service", &svc.ID, map[string]any{
		"duration_min": svc.DurationMin,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}
