package repository

import (
	"errors"
	"strings"

	"foundation-registry/internal/cnpj"
	"foundation-registry/internal/database"
	"foundation-registry/internal/database/models"
	apperrors "foundation-registry/internal/errors"
	"foundation-registry/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// FoundationRepository handles database operations for foundations.
// Every method runs a single statement on a pooled connection; uniqueness of
// tax_id is enforced by the unique index, never by a prior read.
type FoundationRepository struct {
	db        *gorm.DB
	validator *validator.Validate
	policy    models.FieldPolicy
}

// NewFoundationRepository creates a new foundation repository
func NewFoundationRepository(db *gorm.DB, policy models.FieldPolicy) *FoundationRepository {
	if !policy.IsValid() {
		policy = models.FieldPolicyStrict
	}
	return &FoundationRepository{
		db:        db,
		validator: validation.New(),
		policy:    policy,
	}
}

// Policy returns the required-field policy applied on writes
func (r *FoundationRepository) Policy() models.FieldPolicy {
	return r.policy
}

// EnsureSchema creates the foundations table and its unique index if absent
func (r *FoundationRepository) EnsureSchema() error {
	if err := database.Migrate(r.db); err != nil {
		return apperrors.NewStorageUnavailableError("ensure schema", err)
	}
	return nil
}

// FindByTaxID retrieves a foundation by CNPJ. ok is false when no row matches.
func (r *FoundationRepository) FindByTaxID(taxID string) (*models.Foundation, bool, error) {
	var foundation models.Foundation
	err := r.db.First(&foundation, "tax_id = ?", cnpj.Normalize(taxID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, classify("find foundation", err)
	}
	return &foundation, true, nil
}

// Insert persists a new foundation and assigns its ID.
// A second insert for the same CNPJ fails with ErrFoundationExists.
func (r *FoundationRepository) Insert(foundation *models.Foundation) error {
	if foundation == nil {
		return apperrors.ErrNilFoundation
	}
	trimFields(foundation)
	if err := r.validate(foundation); err != nil {
		return err
	}

	foundation.ID = 0
	if err := r.db.Create(foundation).Error; err != nil {
		foundation.ID = 0
		return classify("insert foundation", err)
	}
	return nil
}

// Update overwrites every field except the CNPJ of the row addressed by foundation.TaxID
func (r *FoundationRepository) Update(foundation *models.Foundation) error {
	if foundation == nil {
		return apperrors.ErrNilFoundation
	}
	trimFields(foundation)
	if err := r.validate(foundation); err != nil {
		return err
	}

	res := r.db.Model(&models.Foundation{}).
		Where("tax_id = ?", foundation.TaxID).
		Updates(map[string]interface{}{
			"name":                  foundation.Name,
			"email":                 foundation.Email,
			"phone":                 foundation.Phone,
			"supported_institution": foundation.SupportedInstitution,
		})
	if res.Error != nil {
		return classify("update foundation", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrFoundationNotFound
	}
	return nil
}

// Delete removes the foundation with the given CNPJ and reports whether a row was removed
func (r *FoundationRepository) Delete(taxID string) (bool, error) {
	res := r.db.Where("tax_id = ?", cnpj.Normalize(taxID)).Delete(&models.Foundation{})
	if res.Error != nil {
		return false, classify("delete foundation", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListAll retrieves all foundations in insertion order
func (r *FoundationRepository) ListAll() ([]models.Foundation, error) {
	foundations := make([]models.Foundation, 0)
	if err := r.db.Order("id ASC").Find(&foundations).Error; err != nil {
		return nil, classify("list foundations", err)
	}
	return foundations, nil
}

// Count returns the number of registered foundations
func (r *FoundationRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Foundation{}).Count(&total).Error; err != nil {
		return 0, classify("count foundations", err)
	}
	return total, nil
}

func (r *FoundationRepository) validate(foundation *models.Foundation) error {
	if err := r.validator.Struct(foundation); err != nil {
		return validation.ToAppError(err)
	}
	if r.policy.IsStrict() {
		if strings.TrimSpace(foundation.Phone) == "" {
			return apperrors.NewValidationError("phone", "is required")
		}
		if strings.TrimSpace(foundation.SupportedInstitution) == "" {
			return apperrors.NewValidationError("supported_institution", "is required")
		}
	}
	return nil
}

// trimFields normalizes the CNPJ and strips surrounding whitespace so stored
// values match what validation saw
func trimFields(foundation *models.Foundation) {
	foundation.TaxID = cnpj.Normalize(foundation.TaxID)
	foundation.Name = strings.TrimSpace(foundation.Name)
	foundation.Email = strings.TrimSpace(foundation.Email)
	foundation.Phone = strings.TrimSpace(foundation.Phone)
	foundation.SupportedInstitution = strings.TrimSpace(foundation.SupportedInstitution)
}

// classify maps driver errors onto the repository's error kinds
func classify(op string, err error) error {
	if isUniqueViolation(err) {
		return apperrors.ErrFoundationExists
	}
	return apperrors.NewStorageUnavailableError(op, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
