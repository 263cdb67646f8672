package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Struct tag failures surface as 400s through the error
// handler.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request binding.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// intQuery parses an optional numeric query parameter, returning 0 when
// absent or malformed. Pagination normalization turns 0 into defaults.
func intQuery(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

type orderItemRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Notes     string `json:"notes"`
}

type createOrderRequest struct {
	StoreID      *int64             `json:"storeId" validate:"omitempty,gt=0"`
	DeliveryDate *time.Time         `json:"deliveryDate"`
	Notes        string             `json:"notes"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	DeliveryDate *time.Time         `json:"deliveryDate"`
	Notes        string             `json:"notes"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createShipmentRequest struct {
	OrderID       int64  `json:"orderId" validate:"required,gt=0"`
	DriverName    string `json:"driverName"`
	DriverPhone   string `json:"driverPhone"`
	Notes         string `json:"notes"`
	SeedFromOrder bool   `json:"seedFromOrder"`
}

type updateShipmentRequest struct {
	DriverName  string `json:"driverName"`
	DriverPhone string `json:"driverPhone"`
	Notes       string `json:"notes"`
}

type updateShipmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type addShipmentItemRequest struct {
	OrderItemID int64  `json:"orderItemId" validate:"required,gt=0"`
	BatchID     *int64 `json:"batchId" validate:"omitempty,gt=0"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Note        string `json:"note"`
}

type updateShipmentItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type createProductRequest struct {
	SKU         string  `json:"sku" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Unit        string  `json:"unit" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	ProductType string  `json:"productType" validate:"required"`
	CategoryID  *int64  `json:"categoryId" validate:"omitempty,gt=0"`
}

type updateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Unit        string  `json:"unit" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	ProductType string  `json:"productType" validate:"required"`
	CategoryID  *int64  `json:"categoryId" validate:"omitempty,gt=0"`
	Active      bool    `json:"active"`
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type createStoreRequest struct {
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	StoreType string `json:"storeType" validate:"required"`
}

type updateUserRoleRequest struct {
	Role    string `json:"role" validate:"required"`
	StoreID *int64 `json:"storeId" validate:"omitempty,gt=0"`
}
