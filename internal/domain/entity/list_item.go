package entity

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis is a single reference entry owned by exactly one DiagnosisList.
type Diagnosis struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ICDCode       string    `gorm:"type:varchar(20);not null" json:"icd_code"`
	DiagnosisCode string    `gorm:"type:varchar(50)" json:"diagnosis_code"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	IsPrimary     bool      `gorm:"not null;default:false" json:"is_primary"`
	ListID        uuid.UUID `gorm:"type:uuid;not null;index" json:"list_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}

// Drug is a single NDC reference entry owned by exactly one DrugList.
type Drug struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NDCDrugCode string    `gorm:"type:varchar(50);not null" json:"ndc_drug_code"`
	ListID      uuid.UUID `gorm:"type:uuid;not null;index" json:"list_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Drug) TableName() string {
	return "drugs"
}

// Clinician belongs to exactly one ClinicianList. Rows are added one at a
// time or in bulk from an import file.
type Clinician struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicianListID uuid.UUID `gorm:"type:uuid;not null;index" json:"clinician_list_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	LicenseNumber   string    `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	Specialty       string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Email           string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Clinician) TableName() string {
	return "clinicians"
}
