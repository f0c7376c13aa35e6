package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"aayatana/internal/domain/user"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/shared/errors"
	"aayatana/internal/shared/logger"
)

// UserRepositoryImpl implements the user.Repository interface
type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user
func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return user.ErrEmailTaken
		}
		r.logger.Errorw("failed to create user", "sid", u.SID(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "sid", u.SID(), "tenant_sid", u.TenantSID(), "role", u.Role().String())
	return nil
}

// Update persists changes to an existing user
func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]any{
			"full_name": u.FullName(),
			"role":      u.Role().String(),
			"status":    u.Status().String(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "sid", u.SID(), "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete removes a user
func (r *UserRepositoryImpl) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.UserModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	r.logger.Infow("user deleted", "sid", sid)
	return nil
}

// GetBySID finds a user by its public ID
func (r *UserRepositoryImpl) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userToDomain(&model)
}

// ListByTenant returns a tenant's users with total count
func (r *UserRepositoryImpl) ListByTenant(ctx context.Context, tenantSID string, offset, limit int) ([]*user.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("tenant_sid = ?", tenantSID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var modelList []models.UserModel
	if err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list users", "tenant_sid", tenantSID, "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(modelList))
	for i := range modelList {
		u, err := userToDomain(&modelList[i])
		if err != nil {
			r.logger.Warnw("skipping unmappable user row", "sid", modelList[i].SID, "error", err)
			continue
		}
		users = append(users, u)
	}
	return users, total, nil
}

// EmailExists reports whether the email is already used within the tenant
func (r *UserRepositoryImpl) EmailExists(ctx context.Context, tenantSID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("tenant_sid = ? AND email = ?", tenantSID, strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check email", "tenant_sid", tenantSID, "error", err)
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
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

func userToDomain(m *models.UserModel) (*user.User, error) {
	return user.Reconstruct(
		m.ID,
		m.SID,
		m.TenantSID,
		m.FullName,
		m.Email,
		user.Role(m.Role),
		user.Status(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)
}
