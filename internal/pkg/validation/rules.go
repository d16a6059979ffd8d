package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// ObjectIDPattern matches the hex rendering of a 12-byte store identifier
	ObjectIDPattern = `^[0-9a-fA-F]{24}$`

	NameMinLength = 1
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	ObjectID *regexp.Regexp
}{
	ObjectID: regexp.MustCompile(ObjectIDPattern),
}

// IsObjectIDHex reports whether s is a well-formed identifier string
func IsObjectIDHex(s string) bool {
	return CompiledPatterns.ObjectID.MatchString(s)
}

// InvalidObjectIDs returns the entries of ids that are not well-formed identifiers
func InvalidObjectIDs(ids []string) []string {
	var invalid []string
	for _, id := range ids {
		if !IsObjectIDHex(id) {
			invalid = append(invalid, id)
		}
	}
	return invalid
}

// StringValidation checks a single string value
type StringValidation struct {
	Value  string
	MinLen int
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// Validate performs validation. Empty values always fail.
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}
	return len(v.Value) >= v.MinLen
}

// NumericValidation checks an integer against an optional lower bound
type NumericValidation struct {
	Value int
	Min   *int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets the inclusive lower bound
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = &min
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	return v.Min == nil || v.Value >= *v.Min
}
