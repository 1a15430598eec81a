package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FoundationServiceInterface defines the interface for foundation service
type FoundationServiceInterface interface {
	ValidateTaxID(taxID string) *TaxIDValidationResponse
	Create(req *CreateFoundationRequest) (*FoundationResponse, error)
	GetByTaxID(taxID string) (*FoundationResponse, error)
	Update(taxID string, req *UpdateFoundationRequest) (*FoundationResponse, error)
	Delete(taxID string) (*DeleteFoundationResponse, error)
	List() (*FoundationListResponse, error)
}
