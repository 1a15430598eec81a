package testutils

import (
	"foundation-registry/internal/cnpj"
	"foundation-registry/internal/database/models"
)

// DefaultTaxID is a CNPJ whose check digits are valid
const DefaultTaxID = "27865757000102"

// FoundationFactory provides methods to create test Foundation data
type FoundationFactory struct{}

// NewFoundationFactory creates a new FoundationFactory
func NewFoundationFactory() *FoundationFactory {
	return &FoundationFactory{}
}

// Create creates a test Foundation with default values
func (f *FoundationFactory) Create() *models.Foundation {
	return &models.Foundation{
		Name:                 "Fundação Teste",
		TaxID:                DefaultTaxID,
		Email:                "contato@teste.org",
		Phone:                "11999999999",
		SupportedInstitution: "Instituição X",
	}
}

// WithTaxID sets a custom CNPJ for the foundation
func (f *FoundationFactory) WithTaxID(taxID string) *models.Foundation {
	foundation := f.Create()
	foundation.TaxID = taxID
	foundation.Name = "Fundação " + cnpj.Normalize(taxID)
	return foundation
}

// FactorySet provides access to all factories
type FactorySet struct {
	Foundation *FoundationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Foundation: NewFoundationFactory(),
	}
}
