package cmd

import (
	adapters "ckms/internal/adapters/in/http"
	"ckms/internal/adapters/out/postgres"
	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/application/usecases/queries"
	"ckms/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// NewHTTPHandlers bundles every use-case handler the HTTP server needs.
func (c *CompositionRoot) NewHTTPHandlers() adapters.Handlers {
	return adapters.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		UpdateOrder:           c.CreateUpdateOrderCommandHandler(),
		UpdateOrderStatus:     c.CreateUpdateOrderStatusCommandHandler(),
		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		UpdateShipmentDetails: c.CreateUpdateShipmentDetailsCommandHandler(),
		UpdateShipmentStatus:  c.CreateUpdateShipmentStatusCommandHandler(),
		AddShipmentItem:       c.CreateAddShipmentItemCommandHandler(),
		UpdateShipmentItem:    c.CreateUpdateShipmentItemCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		UpdateProduct:         c.CreateUpdateProductCommandHandler(),
		CreateCategory:        c.CreateCreateCategoryCommandHandler(),
		CreateStore:           c.CreateCreateStoreCommandHandler(),
		UpdateUserRole:        c.CreateUpdateUserRoleCommandHandler(),

		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListShipments:     c.CreateListShipmentsQueryHandler(),
		GetShipment:       c.CreateGetShipmentQueryHandler(),
		ListShipmentItems: c.CreateListShipmentItemsQueryHandler(),
		TraceShipment:     c.CreateTraceShipmentQueryHandler(),
		TraceBatch:        c.CreateTraceBatchQueryHandler(),
		ListProducts:      c.CreateListProductsQueryHandler(),
		GetProduct:        c.CreateGetProductQueryHandler(),
		ListCategories:    c.CreateListCategoriesQueryHandler(),
		ListStores:        c.CreateListStoresQueryHandler(),
		GetStore:          c.CreateGetStoreQueryHandler(),
		ListUsers:         c.CreateListUsersQueryHandler(),
		GetMe:             c.CreateGetMeQueryHandler(),
	}
}

// ActiveOrderSource exposes the order repository outside a transaction,
// used by the fulfillment sweep to list orders worth reconciling.
func (c *CompositionRoot) ActiveOrderSource() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentDetailsCommandHandler() commands.UpdateShipmentDetailsCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddShipmentItemCommandHandler() commands.AddShipmentItemCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddShipmentItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentItemCommandHandler() commands.UpdateShipmentItemCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentItemCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileOrderFulfillmentCommandHandler() commands.ReconcileOrderFulfillmentCommandHandler {
	var f commands.ReconcileUoWFactory = FuncReconcileUoWFactory(func() commands.ReconcileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileOrderFulfillmentCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireBatchesCommandHandler() commands.ExpireBatchesCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireBatchesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserRoleCommandHandler() commands.UpdateUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentItemsQueryHandler() queries.ListShipmentItemsQueryHandler {
	return queries.NewListShipmentItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTraceShipmentQueryHandler() queries.TraceShipmentQueryHandler {
	return queries.NewTraceShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTraceBatchQueryHandler() queries.TraceBatchQueryHandler {
	return queries.NewTraceBatchQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStoresQueryHandler() queries.ListStoresQueryHandler {
	return queries.NewListStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMeQueryHandler() queries.GetMeQueryHandler {
	return queries.NewGetMeQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncReconcileUoWFactory func() commands.ReconcileUoW

func (f FuncReconcileUoWFactory) Create() commands.ReconcileUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
