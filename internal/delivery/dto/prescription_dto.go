package dto

import "time"

// Request DTOs

type CreatePrescriptionRequest struct {
	InsuredMember          string   `json:"insuredMember" validate:"omitempty,oneof=Yes No"`
	ValidatedBy            string   `json:"validatedBy" validate:"omitempty"`
	MemberID               string   `json:"memberId" validate:"required"`
	PayerTpa               string   `json:"payerTpa" validate:"required"`
	EmiratesID             string   `json:"emiratesId" validate:"required"`
	ReasonOfUnavailability string   `json:"reasonOfUnavailability" validate:"omitempty"`
	Name                   string   `json:"name" validate:"required"`
	Gender                 string   `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth            string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Weight                 *float64 `json:"weight" validate:"omitempty,gte=0"`
	Physician              string   `json:"physician" validate:"required"`
	Mobile                 string   `json:"mobile" validate:"required,mobile"`
	Email                  string   `json:"email" validate:"omitempty,email"`
	FillDate               string   `json:"fillDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePrescriptionRequest merges partial attributes into the stored record;
// absent fields keep their current value.
type UpdatePrescriptionRequest struct {
	ID                     uint     `json:"id" validate:"required"`
	InsuredMember          string   `json:"insuredMember" validate:"omitempty,oneof=Yes No"`
	ValidatedBy            string   `json:"validatedBy" validate:"omitempty"`
	MemberID               string   `json:"memberId" validate:"omitempty"`
	PayerTpa               string   `json:"payerTpa" validate:"omitempty"`
	EmiratesID             string   `json:"emiratesId" validate:"omitempty"`
	ReasonOfUnavailability string   `json:"reasonOfUnavailability" validate:"omitempty"`
	Name                   string   `json:"name" validate:"omitempty"`
	Gender                 string   `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth            string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Weight                 *float64 `json:"weight" validate:"omitempty,gte=0"`
	Physician              string   `json:"physician" validate:"omitempty"`
	Mobile                 string   `json:"mobile" validate:"omitempty,mobile"`
	Email                  string   `json:"email" validate:"omitempty,email"`
	FillDate               string   `json:"fillDate" validate:"omitempty,datetime=2006-01-02"`
}

type FetchPrescriptionRequest struct {
	ID               uint  `json:"id" validate:"required"`
	IncludeDrugs     *bool `json:"includeDrugs"`
	IncludeDiagnoses *bool `json:"includeDiagnoses"`
}

type PrescriptionIDRequest struct {
	ID uint `json:"id" validate:"required"`
}

type AddPrescriptionDrugRequest struct {
	PrescriptionID    uint   `json:"prescription_id" validate:"required"`
	NDCDrugCode       string `json:"ndc_drug_code" validate:"required"`
	DispensedQuantity *int   `json:"dispensed_quantity" validate:"required,gte=0"`
	DaysOfSupply      *int   `json:"days_of_supply" validate:"required,gte=0"`
	Instructions      string `json:"instructions" validate:"omitempty"`
}

type AddPrescriptionDiagnosisRequest struct {
	PrescriptionID uint   `json:"prescription_id" validate:"required"`
	ICDCode        string `json:"icd_code" validate:"required"`
	DiagnosisCode  string `json:"diagnosis_code" validate:"omitempty"`
	Description    string `json:"description" validate:"omitempty"`
	IsPrimary      bool   `json:"is_primary"`
}

type LineIDRequest struct {
	ID uint `json:"id" validate:"required"`
}

// Response DTOs

type PrescriptionDrugResponse struct {
	ID                uint   `json:"id"`
	PrescriptionID    uint   `json:"prescription_id"`
	NDCDrugCode       string `json:"ndc_drug_code"`
	DispensedQuantity int    `json:"dispensed_quantity"`
	DaysOfSupply      int    `json:"days_of_supply"`
	Instructions      string `json:"instructions,omitempty"`
}

type PrescriptionDiagnosisResponse struct {
	ID             uint   `json:"id"`
	PrescriptionID uint   `json:"prescription_id"`
	ICDCode        string `json:"icd_code"`
	DiagnosisCode  string `json:"diagnosis_code,omitempty"`
	Description    string `json:"description,omitempty"`
	IsPrimary      bool   `json:"is_primary"`
}

type PrescriptionResponse struct {
	ID                     uint                            `json:"id"`
	InsuredMember          string                          `json:"insuredMember,omitempty"`
	ValidatedBy            string                          `json:"validatedBy,omitempty"`
	MemberID               string                          `json:"memberId"`
	PayerTpa               string                          `json:"payerTpa"`
	EmiratesID             string                          `json:"emiratesId"`
	ReasonOfUnavailability string                          `json:"reasonOfUnavailability,omitempty"`
	Name                   string                          `json:"name"`
	Gender                 string                          `json:"gender"`
	DateOfBirth            string                          `json:"dateOfBirth"`
	Weight                 float64                         `json:"weight"`
	Physician              string                          `json:"physician"`
	Mobile                 string                          `json:"mobile"`
	Email                  string                          `json:"email,omitempty"`
	FillDate               string                          `json:"fillDate,omitempty"`
	CreatedAt              time.Time                       `json:"createdAt"`
	UpdatedAt              time.Time                       `json:"updatedAt"`
	Drugs                  []PrescriptionDrugResponse      `json:"drugs,omitempty"`
	Diagnoses              []PrescriptionDiagnosisResponse `json:"diagnoses,omitempty"`
}
