// Package audit records administrative actions against tenants. Entries are
// append-only: nothing in the console ever edits or deletes one.
package audit

import (
	"fmt"
	"time"

	"aayatana/internal/shared/id"
)

// Entry is a single audit log record.
type Entry struct {
	id         uint
	sid        string // aud_xxx
	tenantSID  string
	action     string
	entityType string
	entityID   string
	actor      string
	meta       map[string]any
	timestamp  time.Time
}

// NewEntry creates an audit entry stamped now.
func NewEntry(tenantSID, action, entityType, entityID, actor string, meta map[string]any) (*Entry, error) {
	if tenantSID == "" {
		return nil, fmt.Errorf("tenant SID is required")
	}
	if action == "" {
		return nil, fmt.Errorf("audit action is required")
	}

	sid, err := id.NewAuditID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate audit ID: %w", err)
	}

	return &Entry{
		sid:        sid,
		tenantSID:  tenantSID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		actor:      actor,
		meta:       meta,
		timestamp:  time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds an entry from persistence.
func Reconstruct(dbID uint, sid, tenantSID, action, entityType, entityID, actor string, meta map[string]any, timestamp time.Time) *Entry {
	return &Entry{
		id:         dbID,
		sid:        sid,
		tenantSID:  tenantSID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		actor:      actor,
		meta:       meta,
		timestamp:  timestamp,
	}
}

// ID returns the database ID
func (e *Entry) ID() uint { return e.id }

// SID returns the public ID (aud_xxx)
func (e *Entry) SID() string { return e.sid }

// TenantSID returns the tenant the action was performed against
func (e *Entry) TenantSID() string { return e.tenantSID }

// Action returns the action constant, e.g. TENANT_CREATED
func (e *Entry) Action() string { return e.action }

// EntityType returns the kind of entity affected
func (e *Entry) EntityType() string { return e.entityType }

// EntityID returns the affected entity's identifier, if any
func (e *Entry) EntityID() string { return e.entityID }

// Actor returns who performed the action
func (e *Entry) Actor() string { return e.actor }

// Meta returns action-specific details
func (e *Entry) Meta() map[string]any { return e.meta }

// Timestamp returns when the action happened
func (e *Entry) Timestamp() time.Time { return e.timestamp }

// SetID sets the database ID (only for persistence layer use)
func (e *Entry) SetID(dbID uint) error {
	if e.id != 0 {
		return fmt.Errorf("audit entry ID is already set")
	}
	e.id = dbID
	return nil
}
