package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthAuthority is an administrative body governing which reference lists
// apply to prescriptions under its jurisdiction. Each authority is bound to
// at most one list per category; a nil FK means the category is unbound.
type HealthAuthority struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	ShortName    string    `gorm:"type:varchar(100)" json:"shortName,omitempty"`
	ContactEmail string    `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	Status       Status    `gorm:"type:varchar(10);not null;default:'INACTIVE';index" json:"status"`
	Country      string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	State        string    `gorm:"type:varchar(100)" json:"state,omitempty"`
	City         string    `gorm:"type:varchar(100)" json:"city,omitempty"`

	DiagnosisListID *uuid.UUID `gorm:"type:uuid" json:"diagnosis_list_id,omitempty"`
	DrugListID      *uuid.UUID `gorm:"type:uuid" json:"drug_list_id,omitempty"`
	ClinicianListID *uuid.UUID `gorm:"type:uuid" json:"clinician_list_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	DiagnosisList *DiagnosisList `gorm:"foreignKey:DiagnosisListID" json:"diagnosisList,omitempty"`
	DrugList      *DrugList      `gorm:"foreignKey:DrugListID" json:"drugList,omitempty"`
	ClinicianList *ClinicianList `gorm:"foreignKey:ClinicianListID" json:"clinicianList,omitempty"`
}

func (HealthAuthority) TableName() string {
	return "health_authorities"
}

// ClearBindings unsets all three category bindings.
func (h *HealthAuthority) ClearBindings() {
	h.DiagnosisListID = nil
	h.DrugListID = nil
	h.ClinicianListID = nil
}
