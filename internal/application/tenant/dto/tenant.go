// Package dto defines request and response shapes for tenant management.
package dto

import (
	"time"

	"aayatana/internal/domain/tenant"
)

// TenantResponse is the API shape of a tenant.
type TenantResponse struct {
	SID           string    `json:"sid"`
	Name          string    `json:"name"`
	LegalName     string    `json:"legal_name,omitempty"`
	Slug          string    `json:"slug"`
	CustomerType  string    `json:"customer_type"`
	IndustryTags  []string  `json:"industry_tags"`
	ContactEmail  string    `json:"contact_email,omitempty"`
	Modules       []string  `json:"modules"`
	MVPFeatures   []string  `json:"mvp_features"`
	Status        string    `json:"status"`
	Region        string    `json:"region"`
	RetentionDays int       `json:"retention_days"`
	SLATier       string    `json:"sla_tier"`
	TrustMode     string    `json:"trust_mode"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListTenantsRequest carries listing filters.
type ListTenantsRequest struct {
	Status       string `form:"status"`
	CustomerType string `form:"customer_type"`
	Region       string `form:"region"`
	Search       string `form:"search"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
}

// ListTenantsResponse is a page of tenants.
type ListTenantsResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// FromDomain maps a tenant aggregate to its API shape.
func FromDomain(t *tenant.Tenant) TenantResponse {
	tags := make([]string, 0, len(t.IndustryTags()))
	for _, tag := range t.IndustryTags() {
		tags = append(tags, tag.String())
	}
	modules := make([]string, 0, len(t.Modules()))
	for _, m := range t.Modules() {
		modules = append(modules, string(m))
	}
	mvps := make([]string, 0, len(t.MVPFeatures()))
	for _, m := range t.MVPFeatures() {
		mvps = append(mvps, string(m))
	}
	return TenantResponse{
		SID:           t.SID(),
		Name:          t.Name(),
		LegalName:     t.LegalName(),
		Slug:          t.Slug(),
		CustomerType:  t.CustomerType().String(),
		IndustryTags:  tags,
		ContactEmail:  t.ContactEmail(),
		Modules:       modules,
		MVPFeatures:   mvps,
		Status:        t.Status().String(),
		Region:        t.Region().String(),
		RetentionDays: t.Settings().RetentionDays,
		SLATier:       t.Settings().SLATier.String(),
		TrustMode:     t.Settings().TrustMode.String(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}
