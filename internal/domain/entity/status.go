package entity

import "strings"

// Status is the shared ACTIVE/INACTIVE flag carried by health authorities
// and reference lists.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// PayerStatus is the payer registry's lowercase status enum.
type PayerStatus string

const (
	PayerStatusActive   PayerStatus = "active"
	PayerStatusInactive PayerStatus = "inactive"
)

// NormalizeStatus coerces arbitrary caller input into a valid Status.
// Anything that is not case-insensitively "ACTIVE" becomes INACTIVE,
// including the empty string.
func NormalizeStatus(raw string) Status {
	if strings.EqualFold(strings.TrimSpace(raw), string(StatusActive)) {
		return StatusActive
	}
	return StatusInactive
}

// NormalizePayerStatus is the lowercase projection of NormalizeStatus.
func NormalizePayerStatus(raw string) PayerStatus {
	if NormalizeStatus(raw) == StatusActive {
		return PayerStatusActive
	}
	return PayerStatusInactive
}

func (s Status) IsActive() bool {
	return s == StatusActive
}
