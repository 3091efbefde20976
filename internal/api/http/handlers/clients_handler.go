package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/client-registry/internal/api/dto"
	"github.com/spec-kit/client-registry/internal/service"
	apperrors "github.com/spec-kit/client-registry/pkg/util"
)

// ClientsHandler exposes client registration and listing endpoints.
type ClientsHandler struct {
	registration *service.RegistrationService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(registration *service.RegistrationService) *ClientsHandler {
	return &ClientsHandler{registration: registration}
}

// Register handles POST /register-client.
func (h *ClientsHandler) Register(c *fiber.Ctx) error {
	var req dto.ClientRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.registration.RegisterClient(c.UserContext(), service.RegisterClientInput{
		Name:       req.Name,
		Age:        req.Age,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Gender:     req.Gender,
		NationalID: req.NationalID,
		Password:   req.Password,
	}); err != nil {
		return err
	}

	return c.JSON(dto.StatusResponse{Status: "ok", Message: "client registered"})
}

// List handles GET /clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	summaries, err := h.registration.ListClients(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}
