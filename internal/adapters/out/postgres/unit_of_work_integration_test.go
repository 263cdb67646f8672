package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ckms/internal/adapters/out/postgres"
	"ckms/internal/core/domain/model/inventory"
	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/core/domain/model/order"
	"ckms/internal/core/domain/model/shipment"
	"ckms/internal/core/ports"
	"ckms/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = postgres_adapter.Migrate(db)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, shipments, shipment_items, batches, " +
			"products, categories, stores, users RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow2.BatchRepository(), "Second instance should provide batch repository")
	suite.NotNil(uow2.ProductRepository(), "Second instance should provide product repository")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderRoundTrip verifies an order and its lines survive a
// commit, with database-generated identifiers assigned back.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("ORD-20250115-TEST1")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Positive(testOrder.ID(), "Generated order ID should be assigned back")
	suite.Positive(testOrder.Items()[0].ID(), "Generated line ID should be assigned back")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Code(), retrieved.Code())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Require().Len(retrieved.Items(), 2)
	suite.InEpsilon(testOrder.TotalAmount(), retrieved.TotalAmount(), 0.0001)
}

// TestUnitOfWork_DuplicateOrderCode verifies the unique index on the
// business code surfaces as a Conflict error.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateOrderCode() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-20250115-SAME1")
	suite.addOrder(ctx, first)

	second := suite.createTestOrder("ORD-20250115-SAME1")
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	defer func() { _ = uow.Rollback(ctx) }()

	err = uow.OrderRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

// TestUnitOfWork_ShipmentConsumesBatch verifies the multi-repository flow
// of a shipment write: batch stock decremented and shipped sums visible
// after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentConsumesBatch() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-20250115-SHIP1")
	suite.addOrder(ctx, testOrder)

	testBatch := suite.createTestBatch("BAT-20250115-SHIP1")
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.BatchRepository().Add(ctx, testBatch)
	suite.Require().NoError(err)

	err = testBatch.Consume(10)
	suite.Require().NoError(err)
	err = uow.BatchRepository().Update(ctx, testBatch)
	suite.Require().NoError(err)

	batchID := testBatch.ID()
	orderItemID := testOrder.Items()[0].ID()
	item, err := shipment.NewItem(orderItemID, &batchID, 10, "")
	suite.Require().NoError(err)
	testShipment, err := shipment.NewShipment(
		"SHP-20250115-SHIP1", testOrder.ID(), "Dana", "+1-555-0100", "", []*shipment.Item{item})
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedBatch, err := newUow.BatchRepository().Get(ctx, batchID)
	suite.Require().NoError(err)
	suite.Equal(40, retrievedBatch.CurrentQuantity())

	shipped, err := newUow.ShipmentRepository().SumShippedForOrderItem(ctx, orderItemID, 0)
	suite.Require().NoError(err)
	suite.Equal(10, shipped)

	totals, err := newUow.ShipmentRepository().SumShippedByOrderItem(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(map[int64]int{orderItemID: 10}, totals)
}

// TestUnitOfWork_CancelledShipmentExcludedFromSums verifies shipped-sum
// queries skip cancelled shipments.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CancelledShipmentExcludedFromSums() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-20250115-CANC1")
	suite.addOrder(ctx, testOrder)
	orderItemID := testOrder.Items()[0].ID()

	item, err := shipment.NewItem(orderItemID, nil, 5, "")
	suite.Require().NoError(err)
	testShipment, err := shipment.NewShipment(
		"SHP-20250115-CANC1", testOrder.ID(), "", "", "", []*shipment.Item{item})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.ShipmentRepository().GetForUpdate(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(shipment.Cancelled, time.Now()))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	shipped, err := suite.factory.Create().ShipmentRepository().SumShippedForOrderItem(ctx, orderItemID, 0)
	suite.Require().NoError(err)
	suite.Zero(shipped, "Cancelled shipments should not count as shipped")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all
// changes made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("ORD-20250115-RLBK1")
	testBatch := suite.createTestBatch("BAT-20250115-RLBK1")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.BatchRepository().Add(ctx, testBatch)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = newUow.BatchRepository().Get(ctx, testBatch.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_GetItemForUpdate verifies the order-line lock lookup and
// its order-mismatch behavior.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetItemForUpdate() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-20250115-LINE1")
	suite.addOrder(ctx, testOrder)
	lineID := testOrder.Items()[0].ID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	line, err := uow.OrderRepository().GetItemForUpdate(ctx, testOrder.ID(), lineID)
	suite.Require().NoError(err)
	suite.Equal(lineID, line.ID())

	_, err = uow.OrderRepository().GetItemForUpdate(ctx, testOrder.ID()+999, lineID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound,
		"A line looked up under the wrong order should not be found")
}

// TestUnitOfWork_ExpiredBatchSweep verifies GetActiveExpiredBy picks up
// only batches past their expiry date and not yet marked expired.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ExpiredBatchSweep() {
	ctx := context.Background()
	now := time.Now()

	pastExpiry := now.Add(-24 * time.Hour)
	futureExpiry := now.Add(24 * time.Hour)

	expired, err := inventory.NewBatch("BAT-20250101-EXPD1", 1, 20, now.Add(-72*time.Hour), &pastExpiry)
	suite.Require().NoError(err)
	fresh, err := inventory.NewBatch("BAT-20250115-FRSH1", 1, 20, now.Add(-24*time.Hour), &futureExpiry)
	suite.Require().NoError(err)
	unbounded, err := inventory.NewBatch("BAT-20250115-NOEX1", 1, 20, now.Add(-24*time.Hour), nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BatchRepository().Add(ctx, expired))
	suite.Require().NoError(uow.BatchRepository().Add(ctx, fresh))
	suite.Require().NoError(uow.BatchRepository().Add(ctx, unbounded))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	candidates, err := uow.BatchRepository().GetActiveExpiredBy(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal(expired.ID(), candidates[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(code string) *order.Order {
	item1, err := order.NewItem(1, 20, 4.20, "")
	suite.Require().NoError(err)
	item2, err := order.NewItem(2, 5, 12.00, "")
	suite.Require().NoError(err)

	createdBy := kernel.NewUUID()
	testOrder, err := order.NewOrder(code, 3, createdBy, nil, "", []*order.Item{item1, item2})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestBatch(code string) *inventory.Batch {
	testBatch, err := inventory.NewBatch(code, 1, 50, time.Now().Add(-24*time.Hour), nil)
	suite.Require().NoError(err)
	return testBatch
}

func (suite *UnitOfWorkIntegrationTestSuite) addOrder(ctx context.Context, aggregate *order.Order) {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
}

// TestUnitOfWorkIntegration runs the integration test suite.
// Requires Docker to be available for PostgreSQL container.
func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
