package id

import (
	"strings"
	"testing"
)

func TestGenerate_Length(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"default length on zero", 0, DefaultLength},
		{"default length on negative", -5, DefaultLength},
		{"explicit length", 8, 8},
		{"long id", 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			if err != nil {
				t.Fatalf("Generate(%d) error = %v", tt.length, err)
			}
			if len(got) != tt.want {
				t.Errorf("Generate(%d) length = %d, want %d", tt.length, len(got), tt.want)
			}
			for _, c := range got {
				if !strings.ContainsRune(alphabet, c) {
					t.Errorf("Generate(%d) produced character %q outside alphabet", tt.length, c)
				}
			}
		})
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixTenant, DefaultLength)
	if err != nil {
		t.Fatalf("GenerateWithPrefix error = %v", err)
	}
	if !strings.HasPrefix(got, "tnt_") {
		t.Errorf("GenerateWithPrefix = %q, want tnt_ prefix", got)
	}

	prefix, shortID, err := ParsePrefixedID(got)
	if err != nil {
		t.Fatalf("ParsePrefixedID(%q) error = %v", got, err)
	}
	if prefix != PrefixTenant {
		t.Errorf("prefix = %q, want %q", prefix, PrefixTenant)
	}
	if len(shortID) != DefaultLength {
		t.Errorf("shortID length = %d, want %d", len(shortID), DefaultLength)
	}
}

func TestParsePrefixedID_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no underscore", "tntabc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParsePrefixedID(tt.input); err == nil {
				t.Errorf("ParsePrefixedID(%q) error = nil, want error", tt.input)
			}
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	if err := ValidatePrefix("tnt_abc123", PrefixTenant); err != nil {
		t.Errorf("ValidatePrefix(tnt_abc123, tnt) error = %v, want nil", err)
	}
	if err := ValidatePrefix("usr_abc123", PrefixTenant); err == nil {
		t.Error("ValidatePrefix(usr_abc123, tnt) error = nil, want error")
	}
}

func TestNewIDs_UniquePrefixes(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() (string, error)
		prefix string
	}{
		{"tenant", NewTenantID, PrefixTenant},
		{"user", NewUserID, PrefixUser},
		{"device", NewDeviceID, PrefixDevice},
		{"audit", NewAuditID, PrefixAudit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.gen()
			if err != nil {
				t.Fatalf("generator error = %v", err)
			}
			if err := ValidatePrefix(got, tt.prefix); err != nil {
				t.Errorf("generated id %q failed prefix validation: %v", got, err)
			}
		})
	}
}
