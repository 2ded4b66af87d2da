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

// deleteRequestRequest opens a delete intent over a batch of orders.
type deleteRequestRequest struct {
	OrderIDs []string `json:"orderIds" validate:"required,min=1"`
}

// deleteCommitRequest confirms a previously opened delete intent.
type deleteCommitRequest struct {
	Token string `json:"token" validate:"required"`
}

// OrderHandler holds dependencies for kitchen order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List returns the orders visible to the member, optionally filtered by the
// status query parameter.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context(), deliverycontext.GetUserID(c), usecase.OrderQuery{
		Status: entity.OrderStatus(c.QueryParam("status")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Advance moves one order a step along the kitchen workflow.
func (h *OrderHandler) Advance(c echo.Context) error {
	order, err := h.uc.Advance(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// RequestDelete opens a delete intent and returns its confirmation token.
func (h *OrderHandler) RequestDelete(c echo.Context) error {
	var req deleteRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的删除请求")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "请选择要删除的订单")
	}

	intent, err := h.uc.RequestDelete(c.Request().Context(), deliverycontext.GetUserID(c), req.OrderIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intent, "请确认删除")
}

// CommitDelete consumes a delete intent token and removes its orders.
func (h *OrderHandler) CommitDelete(c echo.Context) error {
	var req deleteCommitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的删除确认")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "缺少确认凭证")
	}

	if err := h.uc.CommitDelete(c.Request().Context(), deliverycontext.GetUserID(c), req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "订单已删除")
}
