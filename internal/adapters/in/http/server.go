// Package http exposes the REST API. Handlers translate requests into
// commands and queries; authorization is enforced per route group with
// role middleware plus store-access checks for store-scoped callers.
package http

import (
	"net/http"

	"ckms/internal/adapters/in/http/middleware"
	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/application/usecases/queries"
	"ckms/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server implements the REST handlers, coordinating between HTTP and the
// application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	updateOrderHandler           commands.UpdateOrderCommandHandler
	updateOrderStatusHandler     commands.UpdateOrderStatusCommandHandler
	createShipmentHandler        commands.CreateShipmentCommandHandler
	updateShipmentDetailsHandler commands.UpdateShipmentDetailsCommandHandler
	updateShipmentStatusHandler  commands.UpdateShipmentStatusCommandHandler
	addShipmentItemHandler       commands.AddShipmentItemCommandHandler
	updateShipmentItemHandler    commands.UpdateShipmentItemCommandHandler
	createProductHandler         commands.CreateProductCommandHandler
	updateProductHandler         commands.UpdateProductCommandHandler
	createCategoryHandler        commands.CreateCategoryCommandHandler
	createStoreHandler           commands.CreateStoreCommandHandler
	updateUserRoleHandler        commands.UpdateUserRoleCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	listShipmentsHandler     queries.ListShipmentsQueryHandler
	getShipmentHandler       queries.GetShipmentQueryHandler
	listShipmentItemsHandler queries.ListShipmentItemsQueryHandler
	traceShipmentHandler     queries.TraceShipmentQueryHandler
	traceBatchHandler        queries.TraceBatchQueryHandler
	listProductsHandler      queries.ListProductsQueryHandler
	getProductHandler        queries.GetProductQueryHandler
	listCategoriesHandler    queries.ListCategoriesQueryHandler
	listStoresHandler        queries.ListStoresQueryHandler
	getStoreHandler          queries.GetStoreQueryHandler
	listUsersHandler         queries.ListUsersQueryHandler
	getMeHandler             queries.GetMeQueryHandler
}

// Handlers bundles every use-case handler the server depends on. Keeps
// the constructor readable; the composition root fills it.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	UpdateOrder           commands.UpdateOrderCommandHandler
	UpdateOrderStatus     commands.UpdateOrderStatusCommandHandler
	CreateShipment        commands.CreateShipmentCommandHandler
	UpdateShipmentDetails commands.UpdateShipmentDetailsCommandHandler
	UpdateShipmentStatus  commands.UpdateShipmentStatusCommandHandler
	AddShipmentItem       commands.AddShipmentItemCommandHandler
	UpdateShipmentItem    commands.UpdateShipmentItemCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	UpdateProduct         commands.UpdateProductCommandHandler
	CreateCategory        commands.CreateCategoryCommandHandler
	CreateStore           commands.CreateStoreCommandHandler
	UpdateUserRole        commands.UpdateUserRoleCommandHandler

	ListOrders        queries.ListOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListShipments     queries.ListShipmentsQueryHandler
	GetShipment       queries.GetShipmentQueryHandler
	ListShipmentItems queries.ListShipmentItemsQueryHandler
	TraceShipment     queries.TraceShipmentQueryHandler
	TraceBatch        queries.TraceBatchQueryHandler
	ListProducts      queries.ListProductsQueryHandler
	GetProduct        queries.GetProductQueryHandler
	ListCategories    queries.ListCategoriesQueryHandler
	ListStores        queries.ListStoresQueryHandler
	GetStore          queries.GetStoreQueryHandler
	ListUsers         queries.ListUsersQueryHandler
	GetMe             queries.GetMeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:           h.CreateOrder,
		updateOrderHandler:           h.UpdateOrder,
		updateOrderStatusHandler:     h.UpdateOrderStatus,
		createShipmentHandler:        h.CreateShipment,
		updateShipmentDetailsHandler: h.UpdateShipmentDetails,
		updateShipmentStatusHandler:  h.UpdateShipmentStatus,
		addShipmentItemHandler:       h.AddShipmentItem,
		updateShipmentItemHandler:    h.UpdateShipmentItem,
		createProductHandler:         h.CreateProduct,
		updateProductHandler:         h.UpdateProduct,
		createCategoryHandler:        h.CreateCategory,
		createStoreHandler:           h.CreateStore,
		updateUserRoleHandler:        h.UpdateUserRole,
		listOrdersHandler:            h.ListOrders,
		getOrderHandler:              h.GetOrder,
		listShipmentsHandler:         h.ListShipments,
		getShipmentHandler:           h.GetShipment,
		listShipmentItemsHandler:     h.ListShipmentItems,
		traceShipmentHandler:         h.TraceShipment,
		traceBatchHandler:            h.TraceBatch,
		listProductsHandler:          h.ListProducts,
		getProductHandler:            h.GetProduct,
		listCategoriesHandler:        h.ListCategories,
		listStoresHandler:            h.ListStores,
		getStoreHandler:              h.GetStore,
		listUsersHandler:             h.ListUsers,
		getMeHandler:                 h.GetMe,
	}
}

// RegisterRoutes wires the server's handlers onto the echo instance.
// Everything under /api/v1 requires a verified bearer token; write routes
// additionally carry role gates.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	shipmentWriters := middleware.RequireRoles(user.RoleAdmin, user.RoleManager, user.RoleCoordinator)
	statusChangers := middleware.RequireRoles(user.RoleAdmin, user.RoleManager, user.RoleCoordinator)
	catalogAdmins := middleware.RequireRoles(user.RoleAdmin, user.RoleManager)
	admins := middleware.RequireRoles(user.RoleAdmin)

	api := e.Group("/api/v1", auth)

	orders := api.Group("/orders")
	orders.GET("", s.ListOrders)
	orders.GET("/store/:storeId", s.ListOrdersByStore)
	orders.GET("/:id", s.GetOrder)
	orders.POST("", s.CreateOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.PUT("/:id/status", s.UpdateOrderStatus, statusChangers)

	shipments := api.Group("/shipments")
	shipments.GET("", s.ListShipments)
	shipments.POST("", s.CreateShipment, shipmentWriters)
	shipments.GET("/trace/:batchId", s.TraceBatch)
	shipments.GET("/:id", s.GetShipment)
	shipments.PATCH("/:id", s.UpdateShipment, shipmentWriters)
	shipments.PATCH("/:id/status", s.UpdateShipmentStatus, shipmentWriters)
	shipments.GET("/:id/items", s.ListShipmentItems)
	shipments.POST("/:id/items", s.AddShipmentItem, shipmentWriters)
	shipments.PATCH("/:id/items/:itemId", s.UpdateShipmentItem, shipmentWriters)
	shipments.GET("/:id/trace", s.TraceShipment)

	products := api.Group("/products")
	products.GET("", s.ListProducts)
	products.POST("", s.CreateProduct, catalogAdmins)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct, catalogAdmins)

	categories := api.Group("/categories")
	categories.GET("", s.ListCategories)
	categories.POST("", s.CreateCategory, catalogAdmins)

	stores := api.Group("/stores")
	stores.GET("", s.ListStores)
	stores.POST("", s.CreateStore, catalogAdmins)
	stores.GET("/:id", s.GetStore)

	users := api.Group("/users")
	users.GET("", s.ListUsers, catalogAdmins)
	users.GET("/me", s.GetMe)
	users.PATCH("/:id/role", s.UpdateUserRole, admins)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func authUser(c echo.Context) (middleware.AuthUser, error) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		return middleware.AuthUser{}, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return u, nil
}
