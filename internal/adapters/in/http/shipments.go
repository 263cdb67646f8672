package http

import (
	"net/http"

	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/application/usecases/queries"
	"ckms/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// ListShipments handles GET /api/v1/shipments.
//
//	@Summary	List shipments
//	@Tags		shipments
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments [get]
func (s *Server) ListShipments(c echo.Context) error {
	query := queries.NewListShipmentsQuery(intQuery(c, "page"), intQuery(c, "limit"))
	response, err := s.listShipmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, pagedResponse{Items: response.Shipments, Meta: response.Meta})
}

// GetShipment handles GET /api/v1/shipments/:id.
//
//	@Summary	Get one shipment with its lines
//	@Tags		shipments
//	@Param		id	path	int	true	"Shipment ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/{id} [get]
func (s *Server) GetShipment(c echo.Context) error {
	u, err := authUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(id, u.StoreScope())
	if err != nil {
		return err
	}

	view, err := s.getShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, view)
}

// CreateShipment handles POST /api/v1/shipments.
//
//	@Summary	Create a shipment against a processing order
//	@Tags		shipments
//	@Param		request	body	createShipmentRequest	true	"Shipment to create"
//	@Success	201	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments [post]
func (s *Server) CreateShipment(c echo.Context) error {
	var req createShipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.OrderID, req.DriverName, req.DriverPhone, req.Notes, req.SeedFromOrder)
	if err != nil {
		return err
	}

	created, err := s.createShipmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, toShipmentResponse(created))
}

// UpdateShipment handles PATCH /api/v1/shipments/:id.
//
//	@Summary	Edit a shipment's driver and notes
//	@Tags		shipments
//	@Param		id		path	int						true	"Shipment ID"
//	@Param		request	body	updateShipmentRequest	true	"New details"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/{id} [patch]
func (s *Server) UpdateShipment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateShipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentDetailsCommand(id, req.DriverName, req.DriverPhone, req.Notes)
	if err != nil {
		return err
	}

	updated, err := s.updateShipmentDetailsHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toShipmentResponse(updated))
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id/status.
// Cascades onto the parent order and, on cancellation, restores batch
// stock.
//
//	@Summary	Change a shipment's status
//	@Tags		shipments
//	@Param		id		path	int							true	"Shipment ID"
//	@Param		request	body	updateShipmentStatusRequest	true	"Target status"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/{id}/status [patch]
func (s *Server) UpdateShipmentStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateShipmentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, status)
	if err != nil {
		return err
	}

	updated, err := s.updateShipmentStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toShipmentResponse(updated))
}

// ListShipmentItems handles GET /api/v1/shipments/:id/items.
//
//	@Summary	List a shipment's lines
//	@Tags		shipments
//	@Param		id	path	int	true	"Shipment ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/{id}/items [get]
func (s *Server) ListShipmentItems(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewListShipmentItemsQuery(id)
	if err != nil {
		return err
	}

	items, err := s.listShipmentItemsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, items)
}

// AddShipmentItem handles POST /api/v1/shipments/:id/items.
//
//	@Summary	Add a line to a shipment
//	@Tags		shipments
//	@Param		id		path	int						true	"Shipment ID"
//	@Param		request	body	addShipmentItemRequest	true	"Line to add"
//	@Success	201	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/{id}/items [post]
func (s *Server) AddShipmentItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addShipmentItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddShipmentItemCommand(id, req.OrderItemID, req.BatchID, req.Quantity, req.Note)
	if err != nil {
		return err
	}

	updated, err := s.addShipmentItemHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, toShipmentResponse(updated))
}

// UpdateShipmentItem handles PATCH /api/v1/shipments/:id/items/:itemId.
//
//	@Summary	Change a shipment line's quantity
//	@Tags		shipments
//	@Param		id		path	int							true	"Shipment ID"
//	@Param		itemId	path	int							true	"Shipment line ID"
//	@Param		request	body	updateShipmentItemRequest	true	"New quantity"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/{id}/items/{itemId} [patch]
func (s *Server) UpdateShipmentItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	var req updateShipmentItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentItemCommand(id, itemID, req.Quantity)
	if err != nil {
		return err
	}

	updated, err := s.updateShipmentItemHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toShipmentResponse(updated))
}

// TraceShipment handles GET /api/v1/shipments/:id/trace.
//
//	@Summary	Trace which batches a shipment drew from
//	@Tags		shipments
//	@Param		id	path	int	true	"Shipment ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/{id}/trace [get]
func (s *Server) TraceShipment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewTraceShipmentQuery(id)
	if err != nil {
		return err
	}

	trace, err := s.traceShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, trace)
}

// TraceBatch handles GET /api/v1/shipments/trace/:batchId.
//
//	@Summary	Trace which shipments consumed a batch
//	@Tags		shipments
//	@Param		batchId	path	int	true	"Batch ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/shipments/trace/{batchId} [get]
func (s *Server) TraceBatch(c echo.Context) error {
	id, err := pathID(c, "batchId")
	if err != nil {
		return err
	}

	query, err := queries.NewTraceBatchQuery(id)
	if err != nil {
		return err
	}

	trace, err := s.traceBatchHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, trace)
}
