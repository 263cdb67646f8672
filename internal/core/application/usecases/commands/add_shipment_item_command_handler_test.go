package commands_test

import (
	"testing"
	"time"

	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/domain/model/inventory"
	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingShipment(t *testing.T, id, orderID int64) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(id, "SHP-20250115-AAAAA", orderID,
		"", "", "", shipment.Pending, nil, nil, nil)
	require.NoError(t, err)
	return s
}

func activeBatch(t *testing.T, id int64, current int) *inventory.Batch {
	t.Helper()
	b, err := inventory.RestoreBatch(id, "BAT-20250110-AAAAA", 7, 50, current,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), nil, inventory.BatchActive)
	require.NoError(t, err)
	return b
}

func TestAddShipmentItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	batchID := int64(31)
	cmd, err := commands.NewAddShipmentItemCommand(11, 21, &batchID, 3, "")
	require.NoError(t, err)

	aggregate := pendingShipment(t, 11, 5)
	parent := restoredOrder(5, order.Processing, 21, 10)
	batch := activeBatch(t, 31, 20)

	shipments := new(MockShipmentRepository)
	orders := new(MockOrderRepository)
	batches := new(MockBatchRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		shipments.On("GetForUpdate", mock.Anything, int64(11)).Return(aggregate, nil).Once(),
		orders.On("GetForUpdate", mock.Anything, int64(5)).Return(parent, nil).Once(),
		orders.On("GetItemForUpdate", mock.Anything, int64(5), int64(21)).
			Return(parent.Items()[0], nil).Once(),
		shipments.On("SumShippedForOrderItem", mock.Anything, int64(21), int64(0)).Return(4, nil).Once(),
		uow.On("BatchRepository").Return(batches).Once(),
		batches.On("GetForUpdate", mock.Anything, int64(31)).Return(batch, nil).Once(),
		batches.On("Update", mock.Anything, batch).Return(nil).Once(),
		shipments.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		shipments.On("SumShippedByOrderItem", mock.Anything, int64(5)).
			Return(map[int64]int{21: 7}, nil).Once(),
		orders.On("Update", mock.Anything, parent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddShipmentItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, updated.Items(), 1)
	require.Equal(t, 3, updated.Items()[0].Quantity())
	require.Equal(t, 17, batch.CurrentQuantity())
	require.Equal(t, order.FulfillmentPartial, parent.Fulfillment())
	shipments.AssertExpectations(t)
	orders.AssertExpectations(t)
	batches.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddShipmentItemCommandHandler_Handle_OverShipmentRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddShipmentItemCommand(11, 21, nil, 3, "")
	require.NoError(t, err)

	aggregate := pendingShipment(t, 11, 5)
	parent := restoredOrder(5, order.Processing, 21, 10)

	shipments := new(MockShipmentRepository)
	orders := new(MockOrderRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		shipments.On("GetForUpdate", mock.Anything, int64(11)).Return(aggregate, nil).Once(),
		orders.On("GetForUpdate", mock.Anything, int64(5)).Return(parent, nil).Once(),
		orders.On("GetItemForUpdate", mock.Anything, int64(5), int64(21)).
			Return(parent.Items()[0], nil).Once(),
		shipments.On("SumShippedForOrderItem", mock.Anything, int64(21), int64(0)).Return(8, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddShipmentItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.Empty(t, aggregate.Items())
	shipments.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddShipmentItemCommandHandler_Handle_ItemsFrozenAfterShipping(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddShipmentItemCommand(11, 21, nil, 3, "")
	require.NoError(t, err)

	shippedAt := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)
	aggregate, err := shipment.RestoreShipment(11, "SHP-20250115-AAAAA", 5,
		"", "", "", shipment.Shipping, &shippedAt, nil, nil)
	require.NoError(t, err)

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

	h := commands.NewAddShipmentItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	shipments.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
