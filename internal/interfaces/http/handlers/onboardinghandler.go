package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/onboarding"
	"aayatana/internal/application/onboarding/dto"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// OnboardingHandler drives the tenant onboarding wizard over HTTP. Every
// mutation returns the full session state so the client re-renders from
// the response.
type OnboardingHandler struct {
	sessions *onboarding.Service
	logger   logger.Interface
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(sessions *onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{
		sessions: sessions,
		logger:   logger.NewLogger(),
	}
}

// StartSession opens a new wizard session backed by a draft tenant.
func (h *OnboardingHandler) StartSession(c *gin.Context) {
	resp, err := h.sessions.StartSession(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.CreatedResponse(c, resp, "Onboarding session started")
}

// GetSession returns the current wizard state.
func (h *OnboardingHandler) GetSession(c *gin.Context) {
	resp, err := h.sessions.GetSession(c.Param("sessionID"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateProfile applies organization profile edits.
func (h *OnboardingHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for profile update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.sessions.UpdateProfile(c.Param("sessionID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ToggleIndustryTag flips one industry tag.
func (h *OnboardingHandler) ToggleIndustryTag(c *gin.Context) {
	resp, err := h.sessions.ToggleIndustryTag(c.Param("sessionID"), c.Param("tag"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ToggleModule flips a module selection.
func (h *OnboardingHandler) ToggleModule(c *gin.Context) {
	resp, err := h.sessions.ToggleModule(c.Param("sessionID"), c.Param("moduleID"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ToggleMVP flips an MVP feature pack selection.
func (h *OnboardingHandler) ToggleMVP(c *gin.Context) {
	resp, err := h.sessions.ToggleMVP(c.Param("sessionID"), c.Param("mvpID"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateSettings applies retention, region, and SLA edits.
func (h *OnboardingHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for settings update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.sessions.UpdateSettings(c.Param("sessionID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateIdentity applies identity scheme and compliance edits.
func (h *OnboardingHandler) UpdateIdentity(c *gin.Context) {
	var req dto.UpdateIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for identity update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.sessions.UpdateIdentity(c.Param("sessionID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// AddInvite queues a user invitation.
func (h *OnboardingHandler) AddInvite(c *gin.Context) {
	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for invite", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.sessions.AddInvite(c.Param("sessionID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// RemoveInvite drops a queued invitation by email.
func (h *OnboardingHandler) RemoveInvite(c *gin.Context) {
	resp, err := h.sessions.RemoveInvite(c.Param("sessionID"), c.Param("email"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateTrust applies device trust edits.
func (h *OnboardingHandler) UpdateTrust(c *gin.Context) {
	var req dto.UpdateTrustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for trust update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.sessions.UpdateTrust(c.Param("sessionID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Navigate moves the wizard forward, back, or to a specific step.
func (h *OnboardingHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for navigation", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.sessions.Navigate(c.Param("sessionID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Submit commits the wizard and activates the tenant.
func (h *OnboardingHandler) Submit(c *gin.Context) {
	recoverDraft := c.Query("recover") == "true"
	resp, err := h.sessions.Submit(c.Request.Context(), c.Param("sessionID"), recoverDraft)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.CreatedResponse(c, resp, "Tenant onboarded successfully")
}

// DiscardSession drops the in-memory wizard session.
func (h *OnboardingHandler) DiscardSession(c *gin.Context) {
	if err := h.sessions.DiscardSession(c.Param("sessionID")); err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.NoContentResponse(c)
}
