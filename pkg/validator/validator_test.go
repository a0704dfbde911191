package validator

import "testing"

type mobileForm struct {
	Mobile string `validate:"required,mobile"`
}

func TestMobileRule(t *testing.T) {
	cv := NewValidator()

	valid := []string{"0501234567", "971501234567", "123456789012345"}
	for _, number := range valid {
		if err := cv.Validate(&mobileForm{Mobile: number}); err != nil {
			t.Errorf("Validate(%q) failed: %v", number, err)
		}
	}

	invalid := []string{"12345", "+971501234567", "05012345ab", "1234567890123456"}
	for _, number := range invalid {
		if err := cv.Validate(&mobileForm{Mobile: number}); err == nil {
			t.Errorf("Validate(%q) passed, want error", number)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&mobileForm{Mobile: "12345"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Mobile"] != "Mobile must be 10 to 15 digits" {
		t.Errorf("unexpected message: %q", formatted["Mobile"])
	}
}

type dateForm struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

func TestDateRule(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&dateForm{Date: "1990-06-15"}); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := cv.Validate(&dateForm{Date: "15/06/1990"}); err == nil {
		t.Error("invalid date accepted")
	}
}
