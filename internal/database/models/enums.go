package models

// FieldPolicy selects which Foundation contact fields are mandatory
type FieldPolicy string

const (
	// FieldPolicyStrict requires every field, phone and supported institution included
	FieldPolicyStrict FieldPolicy = "strict"
	// FieldPolicyRelaxed only requires name, CNPJ and email
	FieldPolicyRelaxed FieldPolicy = "relaxed"
)

// IsValid checks if the FieldPolicy is valid
func (p FieldPolicy) IsValid() bool {
	switch p {
	case FieldPolicyStrict, FieldPolicyRelaxed:
		return true
	}
	return false
}

// IsStrict reports whether phone and supported institution are required
func (p FieldPolicy) IsStrict() bool {
	return p != FieldPolicyRelaxed
}

// FieldPolicyFromStrict maps a boolean config flag to a FieldPolicy
func FieldPolicyFromStrict(strict bool) FieldPolicy {
	if strict {
		return FieldPolicyStrict
	}
	return FieldPolicyRelaxed
}
