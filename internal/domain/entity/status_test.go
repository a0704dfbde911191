package entity

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
	}{
		{"ACTIVE", StatusActive},
		{"active", StatusActive},
		{"  Active ", StatusActive},
		{"INACTIVE", StatusInactive},
		{"inactive", StatusInactive},
		{"", StatusInactive},
		{"enabled", StatusInactive},
		{"ACTIVATED", StatusInactive},
	}

	for _, c := range cases {
		if got := NormalizeStatus(c.in); got != c.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizePayerStatus(t *testing.T) {
	if got := NormalizePayerStatus("Active"); got != PayerStatusActive {
		t.Errorf("NormalizePayerStatus(Active) = %q, want %q", got, PayerStatusActive)
	}
	if got := NormalizePayerStatus("whatever"); got != PayerStatusInactive {
		t.Errorf("NormalizePayerStatus(whatever) = %q, want %q", got, PayerStatusInactive)
	}
	if got := NormalizePayerStatus(""); got != PayerStatusInactive {
		t.Errorf("NormalizePayerStatus(empty) = %q, want %q", got, PayerStatusInactive)
	}
}

func TestStatusIsActive(t *testing.T) {
	if !StatusActive.IsActive() {
		t.Error("StatusActive.IsActive() = false")
	}
	if StatusInactive.IsActive() {
		t.Error("StatusInactive.IsActive() = true")
	}
}

func TestCredentialIsSentinel(t *testing.T) {
	sentinel := PayerHACredential{UserName: SentinelCredentialUser}
	if !sentinel.IsSentinel() {
		t.Error("sentinel row not detected")
	}

	real := PayerHACredential{UserName: "dha_account"}
	if real.IsSentinel() {
		t.Error("real credential flagged as sentinel")
	}
}

func TestHealthAuthorityClearBindings(t *testing.T) {
	authority := HealthAuthority{}
	list := DiagnosisList{}
	authority.DiagnosisListID = &list.ID
	authority.DrugListID = &list.ID
	authority.ClinicianListID = &list.ID

	authority.ClearBindings()

	if authority.DiagnosisListID != nil || authority.DrugListID != nil || authority.ClinicianListID != nil {
		t.Error("bindings not cleared")
	}
}
