package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/client-registry/internal/api/dto"
	"github.com/spec-kit/client-registry/internal/service"
	apperrors "github.com/spec-kit/client-registry/pkg/util"
)

// SuppliersHandler exposes supplier registration and listing endpoints.
type SuppliersHandler struct {
	registration *service.RegistrationService
}

// NewSuppliersHandler constructs handler.
func NewSuppliersHandler(registration *service.RegistrationService) *SuppliersHandler {
	return &SuppliersHandler{registration: registration}
}

// Register handles POST /register-supplier.
func (h *SuppliersHandler) Register(c *fiber.Ctx) error {
	var req dto.SupplierRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.registration.RegisterSupplier(c.UserContext(), service.RegisterSupplierInput{
		Name:        req.Name,
		LegalName:   req.LegalName,
		TaxID:       req.TaxID,
		Age:         req.Age,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Website:     req.Website,
		Service:     req.Service,
		Duration:    req.Duration,
		ContractRef: req.ContractRef,
		Responsible: req.Responsible,
		Notes:       req.Notes,
	}); err != nil {
		return err
	}

	return c.JSON(dto.StatusResponse{Status: "ok", Message: "supplier registered"})
}

// List handles GET /suppliers.
func (h *SuppliersHandler) List(c *fiber.Ctx) error {
	summaries, err := h.registration.ListSuppliers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}
