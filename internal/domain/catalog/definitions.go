package catalog

import "sync"

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the built-in platform catalog. It is constructed once and
// shared; the returned catalog is safe for concurrent reads.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog(defaultModules, defaultMVPs)
	})
	return defaultCatalog
}

var defaultModules = []ModuleDefinition{
	{ID: ModuleVoltEdge, Name: "VoltEdge", Description: "Smart BMS + IoT gateway, raw telemetry, GPS", Icon: IconCPU},
	{ID: ModuleEcoTrace360, Name: "EcoTrace360", Description: "Telemetry ingestion, maps, alerts, operations", Icon: IconActivity},
	{ID: ModuleEcoSense360, Name: "EcoSense360", Description: "AI/ML intelligence, predictive health", Icon: IconBrain},
	{ID: ModuleVoltVault360, Name: "VoltVault360", Description: "Identity, provenance, Battery Aadhaar", Icon: IconShieldCheck},
	{ID: ModuleEcoMetricsESG, Name: "EcoMetricsESG", Description: "ESG/EPR/Carbon tracking", Icon: IconLeaf},
	{ID: ModuleVoltPack, Name: "VoltPack", Description: "Manufacturing & machine integrations", Icon: IconFactory},
}

var defaultMVPs = []MVPDefinition{
	{ID: MVPRealtimeMonitoring, Name: "Real-time Monitoring", Description: "VoltEdge raw + EcoTrace UI",
		RequiredModules: []ModuleID{ModuleVoltEdge, ModuleEcoTrace360}, DataVolume: DataVolumeHigh},
	{ID: MVPAbuseTamperAlerts, Name: "Abuse/Tamper Alerts", Description: "Thermal runaway & theft detection",
		RequiredModules: []ModuleID{ModuleVoltEdge, ModuleEcoTrace360}, DataVolume: DataVolumeMedium},
	{ID: MVPPredictiveHealth, Name: "Predictive Health", Description: "SOH forecasting (EcoSense)",
		RequiredModules: []ModuleID{ModuleEcoSense360}, DataVolume: DataVolumeMedium},
	{ID: MVPLocationGeofence, Name: "Location & Geo-fence", Description: "GPS tracking & rules",
		RequiredModules: []ModuleID{ModuleVoltEdge, ModuleEcoTrace360}, DataVolume: DataVolumeHigh},
	{ID: MVPSwapAuthHandshake, Name: "Swap Auth & Handshake", Description: "Good/Bad battery decisioning",
		RequiredModules: []ModuleID{ModuleVoltEdge, ModuleEcoTrace360}, DataVolume: DataVolumeLow},
	{ID: MVPWarrantyValidation, Name: "Warranty Validation", Description: "Usage vs Warranty Logic",
		RequiredModules: []ModuleID{ModuleEcoTrace360, ModuleEcoSense360}, DataVolume: DataVolumeLow},
	{ID: MVPCycleAnalytics, Name: "Cycle Analytics", Description: "Charge/Discharge pattern analysis",
		RequiredModules: []ModuleID{ModuleVoltEdge, ModuleEcoSense360}, DataVolume: DataVolumeMedium},
	{ID: MVPDriverBehavior, Name: "Driver Behavior Score", Description: "Impact score based on usage",
		RequiredModules: []ModuleID{ModuleEcoSense360}, DataVolume: DataVolumeMedium},
	{ID: MVPLineageViewer, Name: "Lineage Viewer", Description: "Battery history timeline",
		RequiredModules: []ModuleID{ModuleEcoTrace360}, DataVolume: DataVolumeLow},
	{ID: MVPMobileAppAccess, Name: "Mobile App Access", Description: "End-user companion app",
		RequiredModules: []ModuleID{ModuleEcoTrace360}, DataVolume: DataVolumeLow},
}
