package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CustomerHandler struct {
	store  RegistryStore
	audit  *audit.Dispatcher
	shopID uint
}

func NewCustomerHandler(store RegistryStore, audit *audit.Dispatcher, shopID uint) *CustomerHandler {
	return &CustomerHandler{store: store, audit: audit, shopID: shopID}
}

type CreateCustomerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer := models.Customer{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
	}

	if err := h.store.CreateCustomer(c.Request.Context(), &customer); err != nil {
		httperr.Respond(c, err)
		return
	}

	writeAudit(h.audit, h.shopID, "customer_created", "customer", &customer.ID, nil)

	httpresp.Created(c, customer)
}

// ======================================================
// LIST CUSTOMERS
// ======================================================

// List accepts an optional ?query= matched against name and phone.
func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	customers, err := h.store.ListCustomers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if query == "" {
		httpresp.List(c, customers)
		return
	}

	matched := []models.Customer{}
	for _, cu := range customers {
		if strings.Contains(strings.ToLower(cu.FullName), query) ||
			strings.Contains(cu.Phone, query) {
			matched = append(matched, cu)
		}
	}

	httpresp.List(c, matched)
}
