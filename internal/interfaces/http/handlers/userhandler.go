package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/user"
	"aayatana/internal/application/user/dto"
	"aayatana/internal/interfaces/http/middleware"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// UserHandler serves tenant-scoped console user management.
type UserHandler struct {
	userService *user.Service
	logger      logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.NewLogger(),
	}
}

// InviteUser invites a user into the tenant.
func (h *UserHandler) InviteUser(c *gin.Context) {
	var req dto.InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for invite user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.userService.InviteUser(c.Request.Context(), c.Param("tenantSID"), middleware.ActorFrom(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.CreatedResponse(c, resp, "User invited")
}

// ListUsers returns a page of the tenant's users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)
	resp, err := h.userService.ListUsers(c.Request.Context(), c.Param("tenantSID"), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.ListSuccessResponse(c, resp.Users, resp.Total, resp.Page, resp.PageSize)
}

// UpdateUser edits a user's name, role, or status.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.userService.UpdateUser(c.Request.Context(), c.Param("userSID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User updated", resp)
}

// DeleteUser removes a user.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("userSID")); err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.NoContentResponse(c)
}
