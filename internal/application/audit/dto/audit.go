// Package dto defines request and response shapes for the audit trail.
package dto

import (
	"time"

	"aayatana/internal/domain/audit"
)

// AuditEntryResponse is the API shape of an audit entry.
type AuditEntryResponse struct {
	SID        string         `json:"sid"`
	TenantSID  string         `json:"tenant_sid"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Actor      string         `json:"actor"`
	Meta       map[string]any `json:"meta,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ListAuditRequest carries listing filters.
type ListAuditRequest struct {
	Action     string `form:"action"`
	EntityType string `form:"entity_type"`
	Actor      string `form:"actor"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// ListAuditResponse is a page of audit entries, newest first.
type ListAuditResponse struct {
	Entries  []AuditEntryResponse `json:"entries"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// FromDomain maps an audit entry to its API shape.
func FromDomain(e *audit.Entry) AuditEntryResponse {
	return AuditEntryResponse{
		SID:        e.SID(),
		TenantSID:  e.TenantSID(),
		Action:     e.Action(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		Actor:      e.Actor(),
		Meta:       e.Meta(),
		Timestamp:  e.Timestamp(),
	}
}
