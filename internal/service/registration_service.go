package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/client-registry/internal/credentials"
	"github.com/spec-kit/client-registry/internal/domain"
	"github.com/spec-kit/client-registry/internal/events"
	"github.com/spec-kit/client-registry/internal/repository"
	"github.com/spec-kit/client-registry/internal/sanitize"
	"github.com/spec-kit/client-registry/internal/validate"
	apperrors "github.com/spec-kit/client-registry/pkg/util"
)

// RegisterClientInput carries the raw form fields for client registration.
type RegisterClientInput struct {
	Name       string
	Age        string
	Email      string
	Phone      string
	Address    string
	Gender     string
	NationalID string
	Password   string
}

// RegisterSupplierInput carries the raw form fields for supplier registration.
type RegisterSupplierInput struct {
	Name        string
	LegalName   string
	TaxID       string
	Age         string
	Phone       string
	Email       string
	Address     string
	Website     string
	Service     string
	Duration    string
	ContractRef string
	Responsible string
	Notes       string
}

// RegistrationService orchestrates sanitize, validate, duplicate-check, hash
// and persist for new records.
type RegistrationService struct {
	clients    repository.ClientRepository
	suppliers  repository.SupplierRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewRegistrationService builds the service.
func NewRegistrationService(clients repository.ClientRepository, suppliers repository.SupplierRepository, dispatcher events.Dispatcher, bcryptCost int) *RegistrationService {
	return &RegistrationService{
		clients:    clients,
		suppliers:  suppliers,
		dispatcher: dispatcher,
		bcryptCost: bcryptCost,
	}
}

// RegisterClient validates and persists a new client record. The password is
// never sanitized or stored in plaintext.
func (s *RegistrationService) RegisterClient(ctx context.Context, in RegisterClientInput) (*domain.Client, error) {
	name := sanitize.Clean(in.Name)
	age := sanitize.Clean(in.Age)
	email := sanitize.Clean(in.Email)
	phone := sanitize.Clean(in.Phone)
	address := sanitize.Clean(in.Address)
	gender := sanitize.Clean(in.Gender)
	nationalID := sanitize.Clean(in.NationalID)

	if name == "" || age == "" || email == "" || phone == "" ||
		address == "" || gender == "" || nationalID == "" || in.Password == "" {
		return nil, apperrors.NewValidationError("all fields are required", nil)
	}

	if !validate.Email(email) {
		return nil, apperrors.NewValidationError("invalid email", nil)
	}
	if !validate.Phone(phone) {
		return nil, apperrors.NewValidationError("invalid phone", nil)
	}
	if !validate.NationalID(nationalID) {
		return nil, apperrors.NewValidationError("invalid national id", nil)
	}

	ageValue, err := strconv.Atoi(age)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid age", nil)
	}

	// Fast path; the store's unique indexes remain the authoritative guard.
	exists, err := s.clients.ExistsByEmailOrNationalID(ctx, email, nationalID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if exists {
		return nil, apperrors.NewConflict("email or national id already registered")
	}

	hash, err := credentials.Hash(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	client := &domain.Client{
		Name:         name,
		Age:          ageValue,
		Email:        email,
		Phone:        phone,
		Address:      address,
		Gender:       gender,
		NationalID:   nationalID,
		PasswordHash: hash,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, apperrors.NewConflict("email or national id already registered")
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventClientRegistered, events.ClientRegisteredPayload{
		ClientID: client.ID,
		Name:     client.Name,
		Email:    client.Email,
	})
	return client, nil
}

// RegisterSupplier validates and persists a new supplier record.
func (s *RegistrationService) RegisterSupplier(ctx context.Context, in RegisterSupplierInput) (*domain.Supplier, error) {
	name := sanitize.Clean(in.Name)
	legalName := sanitize.Clean(in.LegalName)
	taxID := sanitize.Clean(in.TaxID)
	email := sanitize.Clean(in.Email)
	phone := sanitize.Clean(in.Phone)

	if name == "" || legalName == "" || taxID == "" || email == "" || phone == "" {
		return nil, apperrors.NewValidationError("name, legal_name, tax_id, email and phone are required", nil)
	}

	if !validate.Email(email) {
		return nil, apperrors.NewValidationError("invalid email", nil)
	}
	if !validate.Phone(phone) {
		return nil, apperrors.NewValidationError("invalid phone", nil)
	}
	if !validate.TaxID(taxID) {
		return nil, apperrors.NewValidationError("invalid tax id", nil)
	}

	ageValue := 0
	if age := sanitize.Clean(in.Age); age != "" {
		v, err := strconv.Atoi(age)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid age", nil)
		}
		ageValue = v
	}

	exists, err := s.suppliers.ExistsByTaxID(ctx, taxID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if exists {
		return nil, apperrors.NewConflict("tax id already registered")
	}

	supplier := &domain.Supplier{
		Name:        name,
		LegalName:   legalName,
		TaxID:       taxID,
		Age:         ageValue,
		Phone:       phone,
		Email:       email,
		Address:     sanitize.Clean(in.Address),
		Website:     sanitize.Clean(in.Website),
		Service:     sanitize.Clean(in.Service),
		Duration:    sanitize.Clean(in.Duration),
		ContractRef: sanitize.Clean(in.ContractRef),
		Responsible: sanitize.Clean(in.Responsible),
		Notes:       sanitize.Clean(in.Notes),
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, apperrors.NewConflict("tax id already registered")
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventSupplierRegistered, events.SupplierRegisteredPayload{
		SupplierID: supplier.ID,
		Name:       supplier.Name,
		Email:      supplier.Email,
	})
	return supplier, nil
}

// ListClients returns client summaries newest first, without password hashes.
func (s *RegistrationService) ListClients(ctx context.Context) ([]domain.ClientSummary, error) {
	summaries, err := s.clients.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return summaries, nil
}

// ListSuppliers returns supplier summaries newest first.
func (s *RegistrationService) ListSuppliers(ctx context.Context) ([]domain.SupplierSummary, error) {
	summaries, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return summaries, nil
}

func (s *RegistrationService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
