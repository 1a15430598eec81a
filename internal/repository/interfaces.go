package repository

import (
	"foundation-registry/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// FoundationRepositoryInterface defines the interface for foundation repository operations
type FoundationRepositoryInterface interface {
	EnsureSchema() error
	FindByTaxID(taxID string) (*models.Foundation, bool, error)
	Insert(foundation *models.Foundation) error
	Update(foundation *models.Foundation) error
	Delete(taxID string) (bool, error)
	ListAll() ([]models.Foundation, error)
	Count() (int64, error)
}
