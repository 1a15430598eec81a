package models

// Foundation represents a charitable foundation registered under its CNPJ
type Foundation struct {
	ID                   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                 string `json:"name" gorm:"size:200;not null" validate:"notblank,max=200"`
	TaxID                string `json:"tax_id" gorm:"column:tax_id;size:14;not null;uniqueIndex:idx_foundations_tax_id" validate:"required,cnpj"` // stored normalized, digits only
	Email                string `json:"email" gorm:"size:255;not null" validate:"notblank,max=255"`
	Phone                string `json:"phone" gorm:"size:30;not null" validate:"max=30"`
	SupportedInstitution string `json:"supported_institution" gorm:"size:200;not null" validate:"max=200"`
}

// TableName returns the table name for Foundation
func (Foundation) TableName() string {
	return "foundations"
}
