package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+919876543210", true},
		{"9811122233", true},
		{"+1 (415) 555-0100", true},
		{"0123456", false},
		{"+", false},
		{"phone", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestIsE164(t *testing.T) {
	if !IsE164("+91 98765 43210") {
		t.Error("expected +91 number to be E.164")
	}
	if IsE164("9811122233") {
		t.Error("expected number without country code to be rejected")
	}
}
