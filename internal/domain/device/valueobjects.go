package device

// Type classifies the hardware registered against a tenant.
type Type string

const (
	TypeSmartBMS          Type = "Smart BMS"
	TypeIoTGateway        Type = "IoT Gateway"
	TypeSwapStationReader Type = "Swap Station Reader"
	TypeTelematicsAdapter Type = "Telematics Adapter"
	TypeOther             Type = "Other"
)

// IsValid checks whether the device type is known
func (t Type) IsValid() bool {
	switch t {
	case TypeSmartBMS, TypeIoTGateway, TypeSwapStationReader, TypeTelematicsAdapter, TypeOther:
		return true
	}
	return false
}

// String returns the string representation
func (t Type) String() string { return string(t) }

// Status is the lifecycle state of a registered device.
type Status string

const (
	StatusProvisioned Status = "Provisioned"
	StatusActive      Status = "Active"
	StatusOffline     Status = "Offline"
	StatusRevoked     Status = "Revoked"
)

// IsValid checks whether the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusProvisioned, StatusActive, StatusOffline, StatusRevoked:
		return true
	}
	return false
}

// String returns the string representation
func (s Status) String() string { return string(s) }
