package http

import (
	"net/http"

	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/application/usecases/queries"
	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
//
//	@Summary	List orders
//	@Tags		orders
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	u, err := authUser(c)
	if err != nil {
		return err
	}

	query := queries.NewListOrdersQuery(intQuery(c, "page"), intQuery(c, "limit"), u.StoreScope())
	response, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, pagedResponse{Items: response.Orders, Meta: response.Meta})
}

// ListOrdersByStore handles GET /api/v1/orders/store/:storeId.
//
//	@Summary	List one store's orders
//	@Tags		orders
//	@Param		storeId	path	int	true	"Store ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/orders/store/{storeId} [get]
func (s *Server) ListOrdersByStore(c echo.Context) error {
	u, err := authUser(c)
	if err != nil {
		return err
	}

	storeID, err := pathID(c, "storeId")
	if err != nil {
		return err
	}
	if !u.CanAccessStore(storeID) {
		return echo.NewHTTPError(http.StatusForbidden, "order data belongs to another store")
	}

	query := queries.NewListOrdersQuery(intQuery(c, "page"), intQuery(c, "limit"), &storeID)
	response, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, pagedResponse{Items: response.Orders, Meta: response.Meta})
}

// GetOrder handles GET /api/v1/orders/:id.
//
//	@Summary	Get one order with its lines
//	@Tags		orders
//	@Param		id	path	int	true	"Order ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	u, err := authUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id, u.StoreScope())
	if err != nil {
		return err
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, view)
}

// CreateOrder handles POST /api/v1/orders. Store staff always order for
// their own store; other roles name the store in the body.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Param		request	body	createOrderRequest	true	"Order to create"
//	@Success	201	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	u, err := authUser(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	storeID := req.StoreID
	if u.Role == user.RoleStoreStaff {
		if u.StoreID == nil {
			return echo.NewHTTPError(http.StatusForbidden, "caller is not bound to a store")
		}
		storeID = u.StoreID
	}
	if storeID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "storeId is required")
	}

	cmd, err := commands.NewCreateOrderCommand(*storeID, u.ID, req.DeliveryDate, req.Notes, toItemInputs(req.Items))
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, toOrderResponse(created))
}

// UpdateOrder handles PUT /api/v1/orders/:id. Only pending orders accept
// content edits; the domain enforces that.
//
//	@Summary	Edit a pending order
//	@Tags		orders
//	@Param		id		path	int					true	"Order ID"
//	@Param		request	body	updateOrderRequest	true	"New order content"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/orders/{id} [put]
func (s *Server) UpdateOrder(c echo.Context) error {
	u, err := authUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	// Store staff may only edit their own store's orders. The scoped
	// lookup rejects foreign orders before the write path runs.
	if scope := u.StoreScope(); scope != nil {
		query, queryErr := queries.NewGetOrderQuery(id, scope)
		if queryErr != nil {
			return queryErr
		}
		if _, lookupErr := s.getOrderHandler.Handle(c.Request().Context(), query); lookupErr != nil {
			return lookupErr
		}
	}

	var req updateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.DeliveryDate, req.Notes, toItemInputs(req.Items))
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toOrderResponse(updated))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
//
//	@Summary	Change an order's status
//	@Tags		orders
//	@Param		id		path	int							true	"Order ID"
//	@Param		request	body	updateOrderStatusRequest	true	"Target status"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/orders/{id}/status [put]
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toOrderResponse(updated))
}

func toItemInputs(items []orderItemRequest) []commands.OrderItemInput {
	inputs := make([]commands.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}
	return inputs
}
