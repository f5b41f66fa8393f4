package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	customerapp "github.com/crm/backend/internal/application/customer"
	"github.com/crm/backend/internal/domain/shared"
)

// CustomerService is the application service the customer endpoints call
type CustomerService interface {
	ListAll(ctx context.Context) ([]customerapp.Response, error)
	GetByID(ctx context.Context, id uuid.UUID) (*customerapp.Response, error)
	Create(ctx context.Context, in customerapp.CreateInput) (*customerapp.Response, error)
	FullUpdate(ctx context.Context, id uuid.UUID, in customerapp.UpdateInput) error
	Patch(ctx context.Context, id uuid.UUID, in customerapp.PatchInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateAddress(ctx context.Context, id uuid.UUID, in customerapp.UpdateAddressInput) error
	UpdatePhoneNumber(ctx context.Context, id uuid.UUID, in customerapp.UpdatePhoneNumberInput) error
	UpdateStatus(ctx context.Context, id uuid.UUID, in customerapp.UpdateStatusInput) error
}

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Retrieve every customer, oldest first
// @Tags         customers
// @Produce      json
// @Success      200 {object} APIResponse[[]customerapp.Response]
// @Failure      500 {object} ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Success(c, customers)
}

// GetByID godoc
// @ID           getCustomerById
// @Summary      Get customer by ID
// @Description  Retrieve a customer by its ID
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[customerapp.Response]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Success(c, customer)
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Description  Create a customer. Status defaults to Active when omitted.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body customerapp.CreateInput true "Customer creation request"
// @Success      201 {object} APIResponse[customerapp.Response]
// @Header       201 {string} Location "URL of the new customer"
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerapp.CreateInput
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	location := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + customer.ID.String()
	h.Created(c, location, customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Replace a customer
// @Description  Overwrite every mutable field of a customer
// @Tags         customers
// @Accept       json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body customerapp.UpdateInput true "Customer replacement"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req customerapp.UpdateInput
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.customerService.FullUpdate(c.Request.Context(), id, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.NoContent(c)
}

// Patch godoc
// @ID           patchCustomer
// @Summary      Partially update a customer
// @Description  Overwrite only the fields present in the body
// @Tags         customers
// @Accept       json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body customerapp.PatchInput true "Fields to change"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) Patch(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req customerapp.PatchInput
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.customerService.Patch(c.Request.Context(), id, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Permanently remove a customer
// @Tags         customers
// @Param        id path string true "Customer ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.NoContent(c)
}

// UpdateAddress godoc
// @ID           updateCustomerAddress
// @Summary      Replace a customer's address
// @Tags         customers
// @Accept       json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body customerapp.UpdateAddressInput true "New address"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id}/address [patch]
func (h *CustomerHandler) UpdateAddress(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req customerapp.UpdateAddressInput
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.customerService.UpdateAddress(c.Request.Context(), id, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.NoContent(c)
}

// UpdatePhoneNumber godoc
// @ID           updateCustomerPhoneNumber
// @Summary      Replace a customer's phone number
// @Tags         customers
// @Accept       json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body customerapp.UpdatePhoneNumberInput true "New phone number"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id}/phonenumber [patch]
func (h *CustomerHandler) UpdatePhoneNumber(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req customerapp.UpdatePhoneNumberInput
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.customerService.UpdatePhoneNumber(c.Request.Context(), id, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.NoContent(c)
}

// UpdateStatus godoc
// @ID           updateCustomerStatus
// @Summary      Change a customer's status
// @Description  Status must be Active, Inactive, or Suspended
// @Tags         customers
// @Accept       json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body customerapp.UpdateStatusInput true "New status"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id}/status [patch]
func (h *CustomerHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req customerapp.UpdateStatusInput
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.customerService.UpdateStatus(c.Request.Context(), id, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *CustomerHandler) handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		h.NotFound(c, "Customer not found")
		return
	}
	h.HandleDomainError(c, err)
}
