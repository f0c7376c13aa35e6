// Package dto defines request and response shapes for console users.
package dto

import (
	"time"

	"aayatana/internal/domain/user"
)

// UserResponse is the API shape of a console user.
type UserResponse struct {
	SID       string    `json:"sid"`
	TenantSID string    `json:"tenant_sid"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InviteUserRequest invites a user into a tenant.
type InviteUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserRequest edits an existing user. Pointer fields distinguish
// "not sent" from "cleared".
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// ListUsersResponse is a page of users.
type ListUsersResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// FromDomain maps a user aggregate to its API shape.
func FromDomain(u *user.User) UserResponse {
	return UserResponse{
		SID:       u.SID(),
		TenantSID: u.TenantSID(),
		FullName:  u.FullName(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		Status:    u.Status().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
