package handler

import (
	"net/http"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/delivery/http/response"
	"canteen/internal/domain/entity"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// saveUserRequest carries a full member profile; an empty id creates.
type saveUserRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name" validate:"required"`
	Password         string  `json:"password"`
	Balance          float64 `json:"balance" validate:"gte=0"`
	HouseworkCredits int     `json:"houseworkCredits" validate:"gte=0"`
	Role             string  `json:"role" validate:"required,oneof=ADMIN MEMBER"`
	Avatar           string  `json:"avatar"`
}

// saveDishRequest carries a full dish; an empty id creates.
type saveDishRequest struct {
	ID                string   `json:"id"`
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description"`
	Price             float64  `json:"price" validate:"gte=0"`
	ChorePrice        int      `json:"chorePrice" validate:"gte=0"`
	SupportsBalance   bool     `json:"supportsBalance"`
	SupportsHousework bool     `json:"supportsHousework"`
	ImageURL          string   `json:"imageUrl"`
	Category          string   `json:"category" validate:"required"`
	Ingredients       []string `json:"ingredients"`
	Steps             []string `json:"steps"`
	CookingTime       string   `json:"cookingTime"`
	Difficulty        int      `json:"difficulty" validate:"gte=1,lte=5"`
	TasteOptions      []string `json:"tasteOptions"`
}

// AdminHandler holds dependencies for household administration handlers.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers returns every family member for the member editor.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// SaveUser creates or replaces a member profile.
func (h *AdminHandler) SaveUser(c echo.Context) error {
	var req saveUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的成员资料")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "成员资料不完整")
	}

	user, err := h.uc.SaveUser(c.Request().Context(), usecase.SaveUserInput{
		ID:               req.ID,
		Name:             req.Name,
		Password:         req.Password,
		Balance:          req.Balance,
		HouseworkCredits: req.HouseworkCredits,
		Role:             entity.Role(req.Role),
		Avatar:           req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "成员已保存")
}

// DeleteUser removes a member; the acting admin can never remove themselves.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID := deliverycontext.GetUserID(c)
	if err := h.uc.DeleteUser(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "成员已删除")
}

// SaveDish creates or replaces a menu dish.
func (h *AdminHandler) SaveDish(c echo.Context) error {
	var req saveDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的菜品资料")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "菜品资料不完整")
	}

	dish, err := h.uc.SaveDish(c.Request().Context(), usecase.SaveDishInput{
		ID:                req.ID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		ChorePrice:        req.ChorePrice,
		SupportsBalance:   req.SupportsBalance,
		SupportsHousework: req.SupportsHousework,
		ImageURL:          req.ImageURL,
		Category:          req.Category,
		Ingredients:       req.Ingredients,
		Steps:             req.Steps,
		CookingTime:       req.CookingTime,
		Difficulty:        req.Difficulty,
		TasteOptions:      req.TasteOptions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "菜品已保存")
}

// DeleteDish removes a dish from the menu.
func (h *AdminHandler) DeleteDish(c echo.Context) error {
	if err := h.uc.DeleteDish(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "菜品已删除")
}
