package validation

import (
	"strings"
	"testing"
)

func TestIsObjectIDHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase hex", "507f1f77bcf86cd799439011", true},
		{"uppercase hex", "507F1F77BCF86CD799439011", true},
		{"too short", "507f1f77bcf86cd79943901", false},
		{"too long", "507f1f77bcf86cd7994390111", false},
		{"non hex", "507f1f77bcf86cd79943901z", false},
		{"hex prefix", "0x7f1f77bcf86cd799439011", false},
		{"free text", "not-a-valid-id", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsObjectIDHex(tt.input); got != tt.want {
				t.Errorf("IsObjectIDHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInvalidObjectIDs(t *testing.T) {
	ids := []string{"507f1f77bcf86cd799439011", "bad", "507f1f77bcf86cd799439011", ""}
	invalid := InvalidObjectIDs(ids)
	if len(invalid) != 2 {
		t.Fatalf("expected 2 invalid ids, got %v", invalid)
	}
	if invalid[0] != "bad" || invalid[1] != "" {
		t.Errorf("unexpected invalid ids %v", invalid)
	}
}

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"single character", "a", true},
		{"long name", strings.Repeat("a", 500), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStringValidation(tt.input).WithMinLength(NameMinLength).Validate(); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumericValidation(t *testing.T) {
	if !NewNumericValidation(0).WithMin(0).Validate() {
		t.Error("expected zero to satisfy min 0")
	}
	if NewNumericValidation(-1).WithMin(0).Validate() {
		t.Error("expected -1 to fail min 0")
	}
	if !NewNumericValidation(-1).Validate() {
		t.Error("expected no bound to accept any value")
	}
}
