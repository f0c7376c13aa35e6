package tenant

import "fmt"

// TrustMode describes who anchors battery identity and trust.
type TrustMode string

const (
	TrustAayatana TrustMode = "AAYATANA"
	TrustHybrid   TrustMode = "HYBRID"
	TrustExternal TrustMode = "EXTERNAL"
)

// IsValid checks whether the trust mode is known
func (t TrustMode) IsValid() bool {
	switch t {
	case TrustAayatana, TrustHybrid, TrustExternal:
		return true
	}
	return false
}

// String returns the string representation
func (t TrustMode) String() string { return string(t) }

// ProvisioningMode describes how devices get enrolled when trust is anchored
// on the platform side (AAYATANA or HYBRID).
type ProvisioningMode string

const (
	ProvisioningManual ProvisioningMode = "MANUAL"
	ProvisioningAPI    ProvisioningMode = "API"
	ProvisioningQRScan ProvisioningMode = "QR_SCAN"
)

// IsValid checks whether the provisioning mode is known
func (p ProvisioningMode) IsValid() bool {
	switch p {
	case ProvisioningManual, ProvisioningAPI, ProvisioningQRScan:
		return true
	}
	return false
}

// String returns the string representation
func (p ProvisioningMode) String() string { return string(p) }

// IngestMode describes how externally-anchored telemetry reaches the platform.
type IngestMode string

const (
	IngestRESTAPI   IngestMode = "REST_API"
	IngestMQTT      IngestMode = "MQTT"
	IngestBatchFile IngestMode = "BATCH_FILE"
)

// IsValid checks whether the ingest mode is known
func (i IngestMode) IsValid() bool {
	switch i {
	case IngestRESTAPI, IngestMQTT, IngestBatchFile:
		return true
	}
	return false
}

// String returns the string representation
func (i IngestMode) String() string { return string(i) }

// Settings is the per-tenant operational configuration captured during
// onboarding and editable afterwards from the settings screen.
type Settings struct {
	RetentionDays    int
	SLATier          SLATier
	IdentityScheme   IdentityScheme
	TrustMode        TrustMode
	ProvisioningMode ProvisioningMode
	IngestModes      []IngestMode
}

// DefaultSettings returns the settings a fresh draft starts with.
func DefaultSettings() Settings {
	return Settings{
		RetentionDays:    90,
		SLATier:          SLABasic,
		IdentityScheme:   IdentityQR,
		TrustMode:        TrustExternal,
		ProvisioningMode: ProvisioningManual,
		IngestModes:      []IngestMode{IngestRESTAPI},
	}
}

// Validate checks every settings field against its allowed values.
func (s Settings) Validate() error {
	if !IsValidRetentionDays(s.RetentionDays) {
		return fmt.Errorf("invalid retention days: %d", s.RetentionDays)
	}
	if !s.SLATier.IsValid() {
		return fmt.Errorf("invalid SLA tier: %s", s.SLATier)
	}
	if !s.IdentityScheme.IsValid() {
		return fmt.Errorf("invalid identity scheme: %s", s.IdentityScheme)
	}
	if !s.TrustMode.IsValid() {
		return fmt.Errorf("invalid trust mode: %s", s.TrustMode)
	}
	switch s.TrustMode {
	case TrustExternal:
		if len(s.IngestModes) == 0 {
			return fmt.Errorf("at least one ingest mode is required for external trust")
		}
		for _, m := range s.IngestModes {
			if !m.IsValid() {
				return fmt.Errorf("invalid ingest mode: %s", m)
			}
		}
	default:
		if !s.ProvisioningMode.IsValid() {
			return fmt.Errorf("invalid provisioning mode: %s", s.ProvisioningMode)
		}
	}
	return nil
}

// Diff returns the names of the fields that differ between s and next.
func (s Settings) Diff(next Settings) []string {
	var changed []string
	if s.RetentionDays != next.RetentionDays {
		changed = append(changed, "retentionDays")
	}
	if s.SLATier != next.SLATier {
		changed = append(changed, "slaTier")
	}
	if s.IdentityScheme != next.IdentityScheme {
		changed = append(changed, "identityScheme")
	}
	if s.TrustMode != next.TrustMode {
		changed = append(changed, "trustMode")
	}
	if s.ProvisioningMode != next.ProvisioningMode {
		changed = append(changed, "provisioningMode")
	}
	if !equalIngestModes(s.IngestModes, next.IngestModes) {
		changed = append(changed, "ingestModes")
	}
	return changed
}

func equalIngestModes(a, b []IngestMode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
