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

// addItemRequest adds one unit of a dish to the tray.
type addItemRequest struct {
	DishID        string `json:"dishId" validate:"required"`
	SelectedTaste string `json:"selectedTaste"`
	Note          string `json:"note"`
}

// updateQuantityRequest adjusts a tray line by a signed delta.
type updateQuantityRequest struct {
	DishID        string `json:"dishId" validate:"required"`
	SelectedTaste string `json:"selectedTaste"`
	Note          string `json:"note"`
	Delta         int    `json:"delta" validate:"required"`
}

// setPaymentMethodRequest switches a tray line's payment method.
type setPaymentMethodRequest struct {
	DishID        string `json:"dishId" validate:"required"`
	SelectedTaste string `json:"selectedTaste"`
	Note          string `json:"note"`
	Method        string `json:"method" validate:"required,oneof=BALANCE HOUSEWORK"`
}

// CartHandler holds dependencies for cart and checkout handlers.
type CartHandler struct {
	cart     usecase.CartUsecase
	checkout usecase.CheckoutUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, checkout usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{cart: cart, checkout: checkout}
}

// Get returns the member's tray with totals.
func (h *CartHandler) Get(c echo.Context) error {
	view, err := h.cart.Get(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem puts one unit of a dish into the tray.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的加购请求")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "缺少菜品编号")
	}

	view, err := h.cart.Add(c.Request().Context(), deliverycontext.GetUserID(c), usecase.AddToCartInput{
		DishID:        req.DishID,
		SelectedTaste: req.SelectedTaste,
		Note:          req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "已加入托盘")
}

// UpdateQuantity adjusts a tray line's quantity.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的数量调整请求")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "缺少菜品编号或调整量")
	}

	view, err := h.cart.UpdateQuantity(c.Request().Context(), deliverycontext.GetUserID(c), usecase.UpdateQuantityInput{
		Line:  usecase.CartLineRef{DishID: req.DishID, SelectedTaste: req.SelectedTaste, Note: req.Note},
		Delta: req.Delta,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SetPaymentMethod switches a tray line's payment method.
func (h *CartHandler) SetPaymentMethod(c echo.Context) error {
	var req setPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无效的支付方式请求")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "支付方式必须是 BALANCE 或 HOUSEWORK")
	}

	view, err := h.cart.SetPaymentMethod(c.Request().Context(), deliverycontext.GetUserID(c), usecase.SetPaymentMethodInput{
		Line:   usecase.CartLineRef{DishID: req.DishID, SelectedTaste: req.SelectedTaste, Note: req.Note},
		Method: entity.PaymentMethod(req.Method),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Clear empties the member's tray.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context(), deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "托盘已清空")
}

// Checkout settles the tray into kitchen orders.
func (h *CartHandler) Checkout(c echo.Context) error {
	output, err := h.checkout.Checkout(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "下单成功，厨房已接单")
}
