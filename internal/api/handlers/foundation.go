package handlers

import (
	"errors"
	"net/http"

	apperrors "foundation-registry/internal/errors"
	"foundation-registry/internal/logger"
	"foundation-registry/internal/service"

	"github.com/gin-gonic/gin"
)

// FoundationHandler handles HTTP requests for foundations
type FoundationHandler struct {
	service service.FoundationServiceInterface
}

// NewFoundationHandler creates a new foundation handler
func NewFoundationHandler(service service.FoundationServiceInterface) *FoundationHandler {
	return &FoundationHandler{service: service}
}

// errorStatus maps each error kind to its HTTP status and public message.
// An empty message means the error text itself is returned.
var errorStatus = []struct {
	match   func(error) bool
	status  int
	message string
}{
	{apperrors.IsValidation, http.StatusBadRequest, ""},
	{apperrors.IsAlreadyExists, http.StatusConflict, "CNPJ already registered"},
	{apperrors.IsNotFound, http.StatusNotFound, "foundation not found"},
	{apperrors.IsStorageUnavailable, http.StatusServiceUnavailable, "Storage unavailable"},
}

// statusFor returns the HTTP status for err
func statusFor(err error) int {
	for _, e := range errorStatus {
		if e.match(err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the error response for err. fallback is the message used
// for errors of no known kind.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	log := logger.WithContext(c.Request.Context()).WithError(err).WithField("status", status)

	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		message := vErr.Message
		if vErr.Field == "tax_id" {
			message = "inform a valid CNPJ"
		}
		log.Debug("rejected request")
		c.JSON(status, gin.H{"error": message, "field": vErr.Field, "details": vErr.Error()})
		return
	case status == http.StatusInternalServerError:
		log.Error(fallback)
		c.JSON(status, gin.H{"error": fallback, "details": err.Error()})
		return
	case status == http.StatusServiceUnavailable:
		log.Error("storage unavailable")
	}

	for _, e := range errorStatus {
		if e.status == status {
			c.JSON(status, gin.H{"error": e.message})
			return
		}
	}
}

// ValidateCNPJ handles GET /api/v1/cnpj/:cnpj/validate
// @Summary Validate a CNPJ
// @Description Check the format and check digits of a CNPJ without touching the registry
// @Tags cnpj
// @Produce json
// @Param cnpj path string true "CNPJ, digits or formatted without the slash"
// @Success 200 {object} service.TaxIDValidationResponse "Validation result"
// @Router /cnpj/{cnpj}/validate [get]
func (h *FoundationHandler) ValidateCNPJ(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ValidateTaxID(c.Param("cnpj")))
}

// CreateFoundation handles POST /api/v1/foundations
// @Summary Register a foundation
// @Description Register a new foundation. The CNPJ must be valid and not yet registered.
// @Tags foundations
// @Accept json
// @Produce json
// @Param foundation body service.CreateFoundationRequest true "Foundation data"
// @Success 201 {object} service.FoundationResponse "Successfully registered foundation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "CNPJ already registered"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /foundations [post]
func (h *FoundationHandler) CreateFoundation(c *gin.Context) {
	var req service.CreateFoundationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	foundation, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create foundation")
		return
	}

	c.JSON(http.StatusCreated, foundation)
}

// GetFoundation handles GET /api/v1/foundations/:cnpj
// @Summary Get foundation by CNPJ
// @Tags foundations
// @Produce json
// @Param cnpj path string true "CNPJ"
// @Success 200 {object} service.FoundationResponse "Successfully retrieved foundation"
// @Failure 400 {object} map[string]interface{} "Invalid CNPJ"
// @Failure 404 {object} map[string]interface{} "Foundation not found"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /foundations/{cnpj} [get]
func (h *FoundationHandler) GetFoundation(c *gin.Context) {
	foundation, err := h.service.GetByTaxID(c.Param("cnpj"))
	if err != nil {
		respondError(c, err, "Failed to get foundation")
		return
	}

	c.JSON(http.StatusOK, foundation)
}

// ListFoundations handles GET /api/v1/foundations
// @Summary List foundations
// @Description List all registered foundations in registration order
// @Tags foundations
// @Produce json
// @Success 200 {object} service.FoundationListResponse "Registered foundations"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /foundations [get]
func (h *FoundationHandler) ListFoundations(c *gin.Context) {
	foundations, err := h.service.List()
	if err != nil {
		respondError(c, err, "Failed to list foundations")
		return
	}

	c.JSON(http.StatusOK, foundations)
}

// UpdateFoundation handles PUT /api/v1/foundations/:cnpj
// @Summary Update a foundation
// @Description Replace the data of the foundation registered under the CNPJ. The CNPJ itself cannot change.
// @Tags foundations
// @Accept json
// @Produce json
// @Param cnpj path string true "CNPJ"
// @Param foundation body service.UpdateFoundationRequest true "Foundation data"
// @Success 200 {object} service.FoundationResponse "Successfully updated foundation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Foundation not found"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /foundations/{cnpj} [put]
func (h *FoundationHandler) UpdateFoundation(c *gin.Context) {
	var req service.UpdateFoundationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	foundation, err := h.service.Update(c.Param("cnpj"), &req)
	if err != nil {
		respondError(c, err, "Failed to update foundation")
		return
	}

	c.JSON(http.StatusOK, foundation)
}

// DeleteFoundation handles DELETE /api/v1/foundations/:cnpj
// @Summary Delete a foundation
// @Description Remove the foundation registered under the CNPJ. Deleting an unknown CNPJ succeeds with removed=false.
// @Tags foundations
// @Produce json
// @Param cnpj path string true "CNPJ"
// @Success 200 {object} service.DeleteFoundationResponse "Delete outcome"
// @Failure 400 {object} map[string]interface{} "Invalid CNPJ"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /foundations/{cnpj} [delete]
func (h *FoundationHandler) DeleteFoundation(c *gin.Context) {
	result, err := h.service.Delete(c.Param("cnpj"))
	if err != nil {
		respondError(c, err, "Failed to delete foundation")
		return
	}

	c.JSON(http.StatusOK, result)
}
