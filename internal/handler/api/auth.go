package api

import (
	"net/http"

	reqdto "spa-pos/internal/handler/dto/request"
	resdto "spa-pos/internal/handler/dto/response"
	"spa-pos/internal/handler/httperr"
	"spa-pos/internal/handler/middleware"
	"spa-pos/internal/pkg/config"
	"spa-pos/internal/pkg/cookie"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds: cmds,
		cfg:  cfg,
	}
}

// @Summary Operator login
// @Description Login with the spa backend username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, errs.UserMessage(err, "Invalid credentials"), nil)
		case errs.Is(err, commands.ErrRoleNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, errs.UserMessage(err, "Account not allowed"), nil)
		case errs.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, errs.UserMessage(err, "Invalid request data"), nil)
		case errs.Is(err, errs.ErrTransportFailure):
			httperr.AbortWithError(c, http.StatusBadGateway, err, errs.UserMessage(err, "Login failed"), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Token, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		ExpiresAt:   result.ExpiresAt,
		User:        resdto.FromProfile(result.Session.Profile()),
	})
}

// @Summary Operator logout
// @Description End the current terminal session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.Logout(c.Request.Context(), sess.ID()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Logout failed", nil)
		return
	}

	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Description Profile of the logged-in operator
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfile(sess.Profile()))
}
