package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiagnosisList is a named, coded collection of diagnosis reference items.
type DiagnosisList struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"type:varchar(100);not null" json:"code"`
	Status    Status    `gorm:"type:varchar(10);not null;default:'INACTIVE';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Diagnoses []Diagnosis `gorm:"foreignKey:ListID" json:"diagnoses,omitempty"`
}

func (DiagnosisList) TableName() string {
	return "diagnosis_lists"
}

// DrugList is a named, coded collection of NDC drug reference items.
type DrugList struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"type:varchar(100);not null" json:"code"`
	Status    Status    `gorm:"type:varchar(10);not null;default:'INACTIVE';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Drugs []Drug `gorm:"foreignKey:ListID" json:"drugs,omitempty"`
}

func (DrugList) TableName() string {
	return "drug_lists"
}

// ClinicianList is a named, coded collection of clinicians, populated one at
// a time or through bulk import.
type ClinicianList struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"type:varchar(100);not null" json:"code"`
	Status    Status    `gorm:"type:varchar(10);not null;default:'INACTIVE';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Clinicians []Clinician `gorm:"foreignKey:ClinicianListID" json:"clinicians,omitempty"`
}

func (ClinicianList) TableName() string {
	return "clinician_lists"
}
