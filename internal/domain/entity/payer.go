package entity

import (
	"time"

	"github.com/google/uuid"
)

// SentinelCredentialUser marks a placeholder credential row carried over
// from the legacy system. A row with this user name means "not registered"
// even though the row exists.
const SentinelCredentialUser = "default_user"

// Payer is an insurance/billing entity that may hold one credential per
// health authority for external HA system access.
type Payer struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PayerName   string      `gorm:"type:varchar(255);not null" json:"payer_name"`
	Email       string      `gorm:"type:varchar(255);not null" json:"email"`
	Address     string      `gorm:"type:text" json:"address,omitempty"`
	ContactInfo string      `gorm:"type:varchar(255)" json:"contact_info,omitempty"`
	Status      PayerStatus `gorm:"type:varchar(10);not null;default:'inactive';index" json:"status"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Credentials []PayerHACredential `gorm:"foreignKey:PayerID" json:"credentials,omitempty"`
}

func (Payer) TableName() string {
	return "payers"
}

// PayerHACredential links a payer to a health authority with the account the
// payer uses against that authority's external system. One credential per
// (payer, authority) pair.
type PayerHACredential struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PayerID           uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_payer_authority" json:"payer_id"`
	HealthAuthorityID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_payer_authority" json:"health_authority_id"`
	UserName          string      `gorm:"type:varchar(255);not null" json:"user_name"`
	Code              string      `gorm:"type:varchar(100)" json:"code,omitempty"`
	Password          string      `gorm:"type:varchar(255)" json:"password,omitempty"`
	Status            PayerStatus `gorm:"type:varchar(10);not null;default:'inactive'" json:"status"`
	CreatedAt         time.Time   `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Payer           *Payer           `gorm:"foreignKey:PayerID" json:"payer,omitempty"`
	HealthAuthority *HealthAuthority `gorm:"foreignKey:HealthAuthorityID" json:"healthAuthority,omitempty"`
}

func (PayerHACredential) TableName() string {
	return "payer_ha_credentials"
}

// IsSentinel reports whether the row is a legacy placeholder that must be
// treated as an absent credential.
func (c *PayerHACredential) IsSentinel() bool {
	return c.UserName == SentinelCredentialUser
}
