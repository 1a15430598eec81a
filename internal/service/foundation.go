package service

import (
	"fmt"
	"strings"

	"foundation-registry/internal/cnpj"
	"foundation-registry/internal/database/models"
	apperrors "foundation-registry/internal/errors"
	"foundation-registry/internal/metrics"
	"foundation-registry/internal/repository"
	"foundation-registry/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// FoundationService handles business logic for foundations
type FoundationService struct {
	repo      repository.FoundationRepositoryInterface
	validator *validator.Validate
	policy    models.FieldPolicy
	metrics   *metrics.Metrics
}

// NewFoundationService creates a new foundation service.
// The validator must have the cnpj and notblank tags registered (see validation.New).
func NewFoundationService(repo repository.FoundationRepositoryInterface, validator *validator.Validate, policy models.FieldPolicy, m *metrics.Metrics) *FoundationService {
	if !policy.IsValid() {
		policy = models.FieldPolicyStrict
	}
	return &FoundationService{
		repo:      repo,
		validator: validator,
		policy:    policy,
		metrics:   m,
	}
}

// CreateFoundationRequest represents the request to register a foundation
type CreateFoundationRequest struct {
	Name                 string `json:"name" validate:"notblank,max=200"`
	TaxID                string `json:"tax_id" validate:"required,cnpj"`
	Email                string `json:"email" validate:"notblank,max=255"`
	Phone                string `json:"phone" validate:"max=30"`
	SupportedInstitution string `json:"supported_institution" validate:"max=200"`
}

// UpdateFoundationRequest represents the request to update a foundation.
// The CNPJ comes from the path and cannot change.
type UpdateFoundationRequest struct {
	Name                 string `json:"name" validate:"notblank,max=200"`
	Email                string `json:"email" validate:"notblank,max=255"`
	Phone                string `json:"phone" validate:"max=30"`
	SupportedInstitution string `json:"supported_institution" validate:"max=200"`
}

// FoundationResponse represents the response for foundation operations
type FoundationResponse struct {
	ID                   uint   `json:"id"`
	Name                 string `json:"name"`
	TaxID                string `json:"tax_id"`
	TaxIDFormatted       string `json:"tax_id_formatted"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	SupportedInstitution string `json:"supported_institution"`
}

// FoundationListResponse represents the list of all foundations
type FoundationListResponse struct {
	Foundations []FoundationResponse `json:"foundations"`
	Total       int                  `json:"total"`
}

// DeleteFoundationResponse reports whether a delete removed a row
type DeleteFoundationResponse struct {
	TaxID   string `json:"tax_id"`
	Removed bool   `json:"removed"`
}

// TaxIDValidationResponse represents the result of a CNPJ check
type TaxIDValidationResponse struct {
	Input      string `json:"input"`
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
	Formatted  string `json:"formatted,omitempty"`
}

// ValidateTaxID checks the format and check digits of a CNPJ
func (s *FoundationService) ValidateTaxID(taxID string) *TaxIDValidationResponse {
	resp := &TaxIDValidationResponse{Input: taxID, Valid: cnpj.IsValid(taxID)}
	if resp.Valid {
		resp.Normalized = cnpj.Normalize(taxID)
		resp.Formatted, _ = cnpj.Format(taxID)
	}
	return resp
}

// Create registers a new foundation. Duplicates are detected by the store's unique index.
func (s *FoundationService) Create(req *CreateFoundationRequest) (*FoundationResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	trimCreateRequest(req)

	// Validate request
	if err := s.validate(req, req.Phone, req.SupportedInstitution); err != nil {
		s.metrics.ObserveOperation("create", err)
		return nil, err
	}

	foundation := &models.Foundation{
		Name:                 req.Name,
		TaxID:                cnpj.Normalize(req.TaxID),
		Email:                req.Email,
		Phone:                req.Phone,
		SupportedInstitution: req.SupportedInstitution,
	}

	if err := s.repo.Insert(foundation); err != nil {
		s.metrics.ObserveOperation("create", err)
		if apperrors.IsAlreadyExists(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create foundation: %w", err)
	}

	s.metrics.ObserveOperation("create", nil)
	logrus.WithFields(logrus.Fields{"id": foundation.ID, "tax_id": foundation.TaxID}).Info("foundation registered")
	return toResponse(foundation), nil
}

// GetByTaxID retrieves a foundation by CNPJ
func (s *FoundationService) GetByTaxID(taxID string) (*FoundationResponse, error) {
	normalized, err := s.normalizeTaxID(taxID)
	if err != nil {
		s.metrics.ObserveOperation("get", err)
		return nil, err
	}

	foundation, ok, err := s.repo.FindByTaxID(normalized)
	if err != nil {
		s.metrics.ObserveOperation("get", err)
		return nil, fmt.Errorf("failed to get foundation: %w", err)
	}
	if !ok {
		s.metrics.ObserveOperation("get", apperrors.ErrFoundationNotFound)
		return nil, apperrors.ErrFoundationNotFound
	}

	s.metrics.ObserveOperation("get", nil)
	return toResponse(foundation), nil
}

// List retrieves all foundations in registration order
func (s *FoundationService) List() (*FoundationListResponse, error) {
	foundations, err := s.repo.ListAll()
	s.metrics.ObserveOperation("list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to list foundations: %w", err)
	}

	responses := make([]FoundationResponse, len(foundations))
	for i := range foundations {
		responses[i] = *toResponse(&foundations[i])
	}

	return &FoundationListResponse{
		Foundations: responses,
		Total:       len(responses),
	}, nil
}

// Update overwrites the data of the foundation registered under taxID
func (s *FoundationService) Update(taxID string, req *UpdateFoundationRequest) (*FoundationResponse, error) {
	normalized, err := s.normalizeTaxID(taxID)
	if err != nil {
		s.metrics.ObserveOperation("update", err)
		return nil, err
	}

	if req == nil {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	trimUpdateRequest(req)
	if err := s.validate(req, req.Phone, req.SupportedInstitution); err != nil {
		s.metrics.ObserveOperation("update", err)
		return nil, err
	}

	foundation := &models.Foundation{
		Name:                 req.Name,
		TaxID:                normalized,
		Email:                req.Email,
		Phone:                req.Phone,
		SupportedInstitution: req.SupportedInstitution,
	}

	if err := s.repo.Update(foundation); err != nil {
		s.metrics.ObserveOperation("update", err)
		if apperrors.IsNotFound(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update foundation: %w", err)
	}
	s.metrics.ObserveOperation("update", nil)

	// Read back to return the stored row with its ID
	updated, ok, err := s.repo.FindByTaxID(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get foundation: %w", err)
	}
	if !ok {
		// Deleted concurrently between the update and the read
		return nil, apperrors.ErrFoundationNotFound
	}

	return toResponse(updated), nil
}

// Delete removes the foundation registered under taxID.
// Deleting an unknown CNPJ is not an error; Removed reports the outcome.
func (s *FoundationService) Delete(taxID string) (*DeleteFoundationResponse, error) {
	normalized, err := s.normalizeTaxID(taxID)
	if err != nil {
		s.metrics.ObserveOperation("delete", err)
		return nil, err
	}

	removed, err := s.repo.Delete(normalized)
	s.metrics.ObserveOperation("delete", err)
	if err != nil {
		return nil, fmt.Errorf("failed to delete foundation: %w", err)
	}
	if removed {
		logrus.WithField("tax_id", normalized).Info("foundation deleted")
	}

	return &DeleteFoundationResponse{TaxID: normalized, Removed: removed}, nil
}

func (s *FoundationService) validate(req interface{}, phone, institution string) error {
	if err := s.validator.Struct(req); err != nil {
		return validation.ToAppError(err)
	}
	if s.policy.IsStrict() {
		if phone == "" {
			return apperrors.NewValidationError("phone", "is required")
		}
		if institution == "" {
			return apperrors.NewValidationError("supported_institution", "is required")
		}
	}
	return nil
}

func (s *FoundationService) normalizeTaxID(taxID string) (string, error) {
	if strings.TrimSpace(taxID) == "" {
		return "", apperrors.ErrTaxIDRequired
	}
	if !cnpj.IsValid(taxID) {
		return "", apperrors.ErrInvalidTaxID
	}
	return cnpj.Normalize(taxID), nil
}

func trimCreateRequest(req *CreateFoundationRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.TaxID = strings.TrimSpace(req.TaxID)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.SupportedInstitution = strings.TrimSpace(req.SupportedInstitution)
}

func trimUpdateRequest(req *UpdateFoundationRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.SupportedInstitution = strings.TrimSpace(req.SupportedInstitution)
}

// toResponse converts a foundation model to response
func toResponse(foundation *models.Foundation) *FoundationResponse {
	formatted, _ := cnpj.Format(foundation.TaxID)
	return &FoundationResponse{
		ID:                   foundation.ID,
		Name:                 foundation.Name,
		TaxID:                foundation.TaxID,
		TaxIDFormatted:       formatted,
		Email:                foundation.Email,
		Phone:                foundation.Phone,
		SupportedInstitution: foundation.SupportedInstitution,
	}
}
