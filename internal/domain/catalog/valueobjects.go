// Package catalog provides the static platform capability catalog and the
// selection rules between modules and MVP feature packs. The catalog is
// loaded once at process start and never mutated at runtime.
package catalog

// ModuleID identifies a platform capability package a tenant can enable.
type ModuleID string

const (
	ModuleVoltEdge      ModuleID = "VoltEdge"
	ModuleEcoTrace360   ModuleID = "EcoTrace360"
	ModuleEcoSense360   ModuleID = "EcoSense360"
	ModuleVoltVault360  ModuleID = "VoltVault360"
	ModuleEcoMetricsESG ModuleID = "EcoMetricsESG"
	ModuleVoltPack      ModuleID = "VoltPack"
)

// String returns the string representation of the module ID
func (m ModuleID) String() string {
	return string(m)
}

// MVPID identifies a customer-facing feature bundle that depends on one or
// more modules being enabled.
type MVPID string

const (
	MVPRealtimeMonitoring MVPID = "MVP-1"
	MVPAbuseTamperAlerts  MVPID = "MVP-2"
	MVPPredictiveHealth   MVPID = "MVP-3"
	MVPLocationGeofence   MVPID = "MVP-4"
	MVPSwapAuthHandshake  MVPID = "MVP-5"
	MVPWarrantyValidation MVPID = "MVP-6"
	MVPCycleAnalytics     MVPID = "MVP-7"
	MVPDriverBehavior     MVPID = "MVP-8"
	MVPLineageViewer      MVPID = "MVP-9"
	MVPMobileAppAccess    MVPID = "MVP-10"
)

// String returns the string representation of the MVP ID
func (m MVPID) String() string {
	return string(m)
}

// DataVolume classifies the telemetry footprint of an MVP feature pack.
type DataVolume string

const (
	DataVolumeLow    DataVolume = "Low"
	DataVolumeMedium DataVolume = "Medium"
	DataVolumeHigh   DataVolume = "High"
)

// IsValid checks if the data volume classification is valid
func (v DataVolume) IsValid() bool {
	switch v {
	case DataVolumeLow, DataVolumeMedium, DataVolumeHigh:
		return true
	default:
		return false
	}
}

// Weight returns the scoring weight used by the impact estimator.
func (v DataVolume) Weight() int {
	switch v {
	case DataVolumeHigh:
		return 3
	case DataVolumeMedium:
		return 2
	case DataVolumeLow:
		return 1
	default:
		return 0
	}
}

// String returns the string representation of the data volume
func (v DataVolume) String() string {
	return string(v)
}
