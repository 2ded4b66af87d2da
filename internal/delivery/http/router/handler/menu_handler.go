package handler

import (
	"net/http"

	"canteen/internal/delivery/http/response"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for menu browsing handlers.
type MenuHandler struct {
	uc usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List returns the menu, narrowed by the q and category query parameters.
func (h *MenuHandler) List(c echo.Context) error {
	dishes, err := h.uc.ListDishes(c.Request().Context(), usecase.MenuQuery{
		Keyword:  c.QueryParam("q"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "")
}

// Categories returns the distinct dish categories.
func (h *MenuHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Get returns one dish with its full recipe details.
func (h *MenuHandler) Get(c echo.Context) error {
	dish, err := h.uc.GetDish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "")
}
