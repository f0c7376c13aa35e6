package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Acme Batteries", "acme-batteries"},
		{"trailing punctuation", "Acme Batteries!", "acme-batteries"},
		{"mixed separators", "Green__Motion--Logistics", "green-motion-logistics"},
		{"leading and trailing junk", "  ++Volt Labs++  ", "volt-labs"},
		{"digits preserved", "EV 2W Fleet 360", "ev-2w-fleet-360"},
		{"already a slug", "green-motion", "green-motion"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"green-motion", true},
		{"acme", true},
		{"ev-2w", true},
		{"", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"Upper-Case", false},
		{"under_score", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := IsValidSlug(tt.slug); got != tt.want {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}
