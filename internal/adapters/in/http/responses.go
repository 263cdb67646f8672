package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ckms/internal/core/domain/model/catalog"
	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/core/domain/model/store"
	"ckms/internal/core/domain/model/user"
	"ckms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response wrapper. Success responses carry data;
// failures carry a message.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// NewHTTPErrorHandler maps application errors onto the response envelope.
// Typed errors from the errs package carry their own client-safe
// messages; anything unclassified is logged in full and returned as a
// generic 500.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		case errors.Is(err, errs.ErrObjectNotFound):
			status = http.StatusNotFound
			message = err.Error()
		case errors.Is(err, errs.ErrAccessDenied):
			status = http.StatusForbidden
			message = err.Error()
		case errors.Is(err, errs.ErrConflict):
			status = http.StatusConflict
			message = err.Error()
		case errors.Is(err, errs.ErrValueIsInvalid),
			errors.Is(err, errs.ErrValueIsRequired),
			errors.Is(err, errs.ErrValueIsOutOfRange):
			status = http.StatusBadRequest
			message = err.Error()
		default:
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
		}

		if writeErr := c.JSON(status, Envelope{Success: false, Message: message}); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

// orderResponse is the representation of an order aggregate returned by
// write endpoints. Read endpoints return richer query views with joined
// names; this mirrors just the aggregate state.
type orderResponse struct {
	ID           int64               `json:"id"`
	Code         string              `json:"code"`
	StoreID      int64               `json:"storeId"`
	CreatedBy    string              `json:"createdBy"`
	DeliveryDate *time.Time          `json:"deliveryDate,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	TotalAmount  float64             `json:"totalAmount"`
	Status       string              `json:"status"`
	Fulfillment  string              `json:"fulfillment"`
	Items        []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Notes     string  `json:"notes,omitempty"`
}

func toOrderResponse(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Notes:     item.Notes(),
		})
	}

	return orderResponse{
		ID:           aggregate.ID(),
		Code:         aggregate.Code(),
		StoreID:      aggregate.StoreID(),
		CreatedBy:    aggregate.CreatedBy().String(),
		DeliveryDate: aggregate.DeliveryDate(),
		Notes:        aggregate.Notes(),
		TotalAmount:  aggregate.TotalAmount(),
		Status:       aggregate.Status().String(),
		Fulfillment:  aggregate.Fulfillment().String(),
		Items:        items,
	}
}

type shipmentResponse struct {
	ID          int64                  `json:"id"`
	Code        string                 `json:"code"`
	OrderID     int64                  `json:"orderId"`
	DriverName  string                 `json:"driverName,omitempty"`
	DriverPhone string                 `json:"driverPhone,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	Status      string                 `json:"status"`
	ShippedAt   *time.Time             `json:"shippedAt,omitempty"`
	DeliveredAt *time.Time             `json:"deliveredAt,omitempty"`
	Items       []shipmentItemResponse `json:"items"`
}

type shipmentItemResponse struct {
	ID          int64  `json:"id"`
	OrderItemID int64  `json:"orderItemId"`
	BatchID     *int64 `json:"batchId,omitempty"`
	Quantity    int    `json:"quantity"`
	Note        string `json:"note,omitempty"`
}

func toShipmentResponse(aggregate *shipment.Shipment) shipmentResponse {
	items := make([]shipmentItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, shipmentItemResponse{
			ID:          item.ID(),
			OrderItemID: item.OrderItemID(),
			BatchID:     item.BatchID(),
			Quantity:    item.Quantity(),
			Note:        item.Note(),
		})
	}

	return shipmentResponse{
		ID:          aggregate.ID(),
		Code:        aggregate.Code(),
		OrderID:     aggregate.OrderID(),
		DriverName:  aggregate.DriverName(),
		DriverPhone: aggregate.DriverPhone(),
		Notes:       aggregate.Notes(),
		Status:      aggregate.Status().String(),
		ShippedAt:   aggregate.ShippedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Items:       items,
	}
}

type productResponse struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	ProductType string  `json:"productType"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	Active      bool    `json:"active"`
}

func toProductResponse(aggregate *catalog.Product) productResponse {
	return productResponse{
		ID:          aggregate.ID(),
		SKU:         aggregate.SKU(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Unit:        aggregate.Unit(),
		Price:       aggregate.Price(),
		ProductType: aggregate.Type().String(),
		CategoryID:  aggregate.CategoryID(),
		Active:      aggregate.IsActive(),
	}
}

type categoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func toCategoryResponse(aggregate *catalog.Category) categoryResponse {
	return categoryResponse{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
	}
}

type storeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	StoreType string `json:"storeType"`
	Active    bool   `json:"active"`
}

func toStoreResponse(aggregate *store.Store) storeResponse {
	return storeResponse{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Phone:     aggregate.Phone(),
		StoreType: aggregate.Type().String(),
		Active:    aggregate.IsActive(),
	}
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role"`
	StoreID  *int64 `json:"storeId,omitempty"`
	Active   bool   `json:"active"`
}

func toUserResponse(aggregate *user.User) userResponse {
	return userResponse{
		ID:       aggregate.ID().String(),
		Email:    aggregate.Email(),
		FullName: aggregate.FullName(),
		Role:     aggregate.Role().String(),
		StoreID:  aggregate.StoreID(),
		Active:   aggregate.IsActive(),
	}
}

type pagedResponse struct {
	Items any `json:"items"`
	Meta  any `json:"meta"`
}
