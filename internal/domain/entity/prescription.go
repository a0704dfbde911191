package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gender values accepted on a prescription.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// InsuredMember values.
const (
	InsuredYes = "Yes"
	InsuredNo  = "No"
)

// PrescriptionDetail is the aggregate root of a prescription: the parent
// record plus its owned drug and diagnosis line items.
type PrescriptionDetail struct {
	ID                     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	InsuredMember          string          `gorm:"type:varchar(3)" json:"insuredMember,omitempty"`
	ValidatedBy            string          `gorm:"type:varchar(255)" json:"validatedBy,omitempty"`
	MemberID               string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"memberId"`
	PayerTpa               string          `gorm:"type:varchar(255);not null" json:"payerTpa"`
	EmiratesID             string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"emiratesId"`
	ReasonOfUnavailability string          `gorm:"type:varchar(255)" json:"reasonOfUnavailability,omitempty"`
	Name                   string          `gorm:"type:varchar(255);not null" json:"name"`
	Gender                 string          `gorm:"type:varchar(10);not null" json:"gender"`
	DateOfBirth            time.Time       `gorm:"type:date;not null" json:"dateOfBirth"`
	Weight                 decimal.Decimal `gorm:"type:numeric(6,2)" json:"weight"`
	Physician              string          `gorm:"type:varchar(255);not null" json:"physician"`
	Mobile                 string          `gorm:"type:varchar(15);not null" json:"mobile"`
	Email                  string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	FillDate               *time.Time      `gorm:"type:date" json:"fillDate,omitempty"`
	CreatedAt              time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Drugs     []PrescriptionDrug      `gorm:"foreignKey:PrescriptionID" json:"drugs,omitempty"`
	Diagnoses []PrescriptionDiagnosis `gorm:"foreignKey:PrescriptionID" json:"diagnoses,omitempty"`
}

func (PrescriptionDetail) TableName() string {
	return "prescription_details"
}

// PrescriptionDrug is a dispensed drug line item on a prescription.
type PrescriptionDrug struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID    uint   `gorm:"not null;index" json:"prescription_id"`
	NDCDrugCode       string `gorm:"type:varchar(50);not null" json:"ndc_drug_code"`
	DispensedQuantity int    `gorm:"not null" json:"dispensed_quantity"`
	DaysOfSupply      int    `gorm:"not null" json:"days_of_supply"`
	Instructions      string `gorm:"type:varchar(255)" json:"instructions,omitempty"`
}

func (PrescriptionDrug) TableName() string {
	return "prescription_drugs"
}

// PrescriptionDiagnosis is a diagnosis line item on a prescription. At most
// one line per prescription may be primary.
type PrescriptionDiagnosis struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID uint   `gorm:"not null;index" json:"prescription_id"`
	ICDCode        string `gorm:"type:varchar(20);not null" json:"icd_code"`
	DiagnosisCode  string `gorm:"type:varchar(50)" json:"diagnosis_code"`
	Description    string `gorm:"type:text" json:"description,omitempty"`
	IsPrimary      bool   `gorm:"not null;default:false" json:"is_primary"`
}

func (PrescriptionDiagnosis) TableName() string {
	return "prescription_diagnoses"
}
