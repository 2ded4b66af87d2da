package handler

import (
	"net/http"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/delivery/http/response"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginRequest is the login form: member name plus the family passphrase.
type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Members lists the family members for the login picker.
func (h *SessionHandler) Members(c echo.Context) error {
	members, err := h.uc.Members(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "")
}

// Login handles the member login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的登录请求")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "请填写成员名称和通行密码")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "登录成功")
}

// Logout handles the member logout request.
func (h *SessionHandler) Logout(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)
	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "已退出登录")
}

// Profile returns the logged-in member with fresh balances.
func (h *SessionHandler) Profile(c echo.Context) error {
	user, err := h.uc.Current(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	// The passphrase never leaves the server through the profile.
	sanitized := *user
	sanitized.Password = ""

	return response.Success(c, http.StatusOK, sanitized, "")
}
