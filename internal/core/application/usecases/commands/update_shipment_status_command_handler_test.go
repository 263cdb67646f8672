package commands_test

import (
	"testing"
	"time"

	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentStatusCommandHandler_Handle_CancelRestocksBatches(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(11, shipment.Cancelled)
	require.NoError(t, err)

	batchID := int64(31)
	line, err := shipment.RestoreItem(41, 21, &batchID, 3, "")
	require.NoError(t, err)
	aggregate, err := shipment.RestoreShipment(11, "SHP-20250115-AAAAA", 5,
		"Sam", "555-0101", "", shipment.Preparing, nil, nil, []*shipment.Item{line})
	require.NoError(t, err)

	parent := restoredOrder(5, order.Processing, 21, 10)
	batch := activeBatch(t, 31, 17)

	shipments := new(MockShipmentRepository)
	orders := new(MockOrderRepository)
	batches := new(MockBatchRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		shipments.On("GetForUpdate", mock.Anything, int64(11)).Return(aggregate, nil).Once(),
		uow.On("BatchRepository").Return(batches).Once(),
		batches.On("GetForUpdate", mock.Anything, int64(31)).Return(batch, nil).Once(),
		batches.On("Update", mock.Anything, batch).Return(nil).Once(),
		orders.On("GetForUpdate", mock.Anything, int64(5)).Return(parent, nil).Once(),
		shipments.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		shipments.On("SumShippedByOrderItem", mock.Anything, int64(5)).
			Return(map[int64]int{21: 0}, nil).Once(),
		orders.On("Update", mock.Anything, parent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, shipment.Cancelled, updated.Status())
	require.Equal(t, 20, batch.CurrentQuantity())
	require.Equal(t, order.FulfillmentProcessing, parent.Fulfillment())
	shipments.AssertExpectations(t)
	orders.AssertExpectations(t)
	batches.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_DeliveredCascadesOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(11, shipment.Delivered)
	require.NoError(t, err)

	shippedAt := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)
	line, err := shipment.RestoreItem(41, 21, nil, 10, "")
	require.NoError(t, err)
	aggregate, err := shipment.RestoreShipment(11, "SHP-20250115-AAAAA", 5,
		"Sam", "555-0101", "", shipment.Shipping, &shippedAt, nil, []*shipment.Item{line})
	require.NoError(t, err)

	parent := restoredOrder(5, order.Shipping, 21, 10)

	shipments := new(MockShipmentRepository)
	orders := new(MockOrderRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		shipments.On("GetForUpdate", mock.Anything, int64(11)).Return(aggregate, nil).Once(),
		orders.On("GetForUpdate", mock.Anything, int64(5)).Return(parent, nil).Once(),
		shipments.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		shipments.On("SumShippedByOrderItem", mock.Anything, int64(5)).
			Return(map[int64]int{21: 10}, nil).Once(),
		orders.On("Update", mock.Anything, parent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, shipment.Delivered, updated.Status())
	require.NotNil(t, updated.DeliveredAt())
	require.Equal(t, order.Delivered, parent.Status())
	require.Equal(t, order.FulfillmentFulfilled, parent.Fulfillment())
	shipments.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(11, shipment.Delivered)
	require.NoError(t, err)

	aggregate := pendingShipment(t, 11, 5)

	shipments := new(MockShipmentRepository)
	orders := new(MockOrderRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		shipments.On("GetForUpdate", mock.Anything, int64(11)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, shipment.Pending, aggregate.Status())
	shipments.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
