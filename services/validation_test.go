package services

import "testing"

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid", "27AAPFU0939F1ZV", true},
		{"valid lowercase normalized", "27aapfu0939f1zv", true},
		{"empty is valid", "", true},
		{"too short", "27AAPFU0939F1Z", false},
		{"wrong structure", "AAAAA00000AAAAA", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateGSTIN(tt.input); got != tt.valid {
				t.Errorf("ValidateGSTIN(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestValidatePAN(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"ABCDE1234F", true},
		{"", true},
		{"ABC1234567", false},
		{"ABCDE12345", false},
	}
	for _, tt := range tests {
		if got := ValidatePAN(tt.input); got != tt.valid {
			t.Errorf("ValidatePAN(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"9876543210", true},
		{"6123456789", true},
		{"", true},
		{"1234567890", false},
		{"98765", false},
	}
	for _, tt := range tests {
		if got := ValidatePhone(tt.input); got != tt.valid {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestValidateVendorFields(t *testing.T) {
	errs := ValidateVendorFields(map[string]string{
		"gstin": "bad",
		"pan":   "ABCDE1234F",
		"phone": "12345",
	})
	if _, ok := errs["gstin"]; !ok {
		t.Error("expected gstin error")
	}
	if _, ok := errs["pan"]; ok {
		t.Error("unexpected pan error")
	}
	if _, ok := errs["phone"]; !ok {
		t.Error("expected phone error")
	}
}
