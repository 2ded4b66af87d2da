package errors

import (
	"fmt"
	"net/http"

	"canteen/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"密码错误，请输入正确的家庭通行密码！",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"请先登录",
		"",
	)

	// Checkout-related errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"托盘是空的哦",
		"",
	)

	ErrPaymentMethodNotSupported = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_NOT_SUPPORTED",
		"该菜品不支持所选的支付方式",
		"",
	)

	// Admin-related errors
	ErrCannotDeleteSelf = NewBaseError(
		http.StatusConflict,
		"CANNOT_DELETE_SELF",
		"不能删除自己！",
		"",
	)

	ErrDishNotPayable = NewBaseError(
		http.StatusBadRequest,
		"DISH_NOT_PAYABLE",
		"菜品至少需要支持一种支付方式",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"找不到该订单",
		"",
	)

	ErrDeleteIntentInvalid = NewBaseError(
		http.StatusBadRequest,
		"DELETE_INTENT_INVALID",
		"删除确认已失效，请重新操作",
		"",
	)

	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到该家庭成员",
		"",
	)

	ErrDishNotFound = NewBaseError(
		http.StatusNotFound,
		"DISH_NOT_FOUND",
		"找不到该菜品",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"需要管理员权限",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系统内部错误",
		"",
	)
)

// InsufficientBalanceError reports a checkout rejected because the money
// balance does not cover the cart's money total. It carries both amounts so
// the surface can show required vs available.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

// NewInsufficientBalanceError creates an insufficient-balance error.
func NewInsufficientBalanceError(required, available float64) AppError {
	return &InsufficientBalanceError{Required: required, Available: available}
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *InsufficientBalanceError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *InsufficientBalanceError) ErrorCode() string {
	return "INSUFFICIENT_BALANCE"
}

// Message returns the user-friendly error message
func (e *InsufficientBalanceError) Message() string {
	return fmt.Sprintf("余额不足！共需 ¥%.1f，您的余额为 ¥%.1f。", e.Required, e.Available)
}

// Details returns detailed error information
func (e *InsufficientBalanceError) Details() string {
	return fmt.Sprintf("required=%.1f available=%.1f", e.Required, e.Available)
}

// InsufficientChoresError reports a checkout rejected because the housework
// credits do not cover the cart's chore total.
type InsufficientChoresError struct {
	Required  int
	Available int
}

// NewInsufficientChoresError creates an insufficient-chores error.
func NewInsufficientChoresError(required, available int) AppError {
	return &InsufficientChoresError{Required: required, Available: available}
}

// Error implements the error interface
func (e *InsufficientChoresError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *InsufficientChoresError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *InsufficientChoresError) ErrorCode() string {
	return "INSUFFICIENT_CHORES"
}

// Message returns the user-friendly error message
func (e *InsufficientChoresError) Message() string {
	return fmt.Sprintf("家务点数不足！共需 %d 次，您目前仅有 %d 次。", e.Required, e.Available)
}

// Details returns detailed error information
func (e *InsufficientChoresError) Details() string {
	return fmt.Sprintf("required=%d available=%d", e.Required, e.Available)
}

// StorageError represents a record store failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "record store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "数据存取失败"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
