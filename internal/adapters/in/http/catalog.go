package http

import (
	"net/http"

	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/application/usecases/queries"
	"ckms/internal/core/domain/model/catalog"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products.
//
//	@Summary	List catalog products
//	@Tags		catalog
//	@Param		page		query	int		false	"Page number"
//	@Param		limit		query	int		false	"Page size"
//	@Param		categoryId	query	int		false	"Filter by category"
//	@Param		type		query	string	false	"Filter by product type"
//	@Param		active		query	bool	false	"Filter by active flag"
//	@Param		search		query	string	false	"Search in name and SKU"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/products [get]
func (s *Server) ListProducts(c echo.Context) error {
	var categoryID *int64
	if id := int64(intQuery(c, "categoryId")); id > 0 {
		categoryID = &id
	}
	var productType *string
	if t := c.QueryParam("type"); t != "" {
		productType = &t
	}
	var active *bool
	switch c.QueryParam("active") {
	case "true":
		v := true
		active = &v
	case "false":
		v := false
		active = &v
	}

	query := queries.NewListProductsQuery(
		intQuery(c, "page"), intQuery(c, "limit"),
		categoryID, productType, active, c.QueryParam("search"))
	response, err := s.listProductsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, pagedResponse{Items: response.Products, Meta: response.Meta})
}

// GetProduct handles GET /api/v1/products/:id.
//
//	@Summary	Get one product
//	@Tags		catalog
//	@Param		id	path	int	true	"Product ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/products/{id} [get]
func (s *Server) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	view, err := s.getProductHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, view)
}

// CreateProduct handles POST /api/v1/products.
//
//	@Summary	Create a product
//	@Tags		catalog
//	@Param		request	body	createProductRequest	true	"Product to create"
//	@Success	201	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/products [post]
func (s *Server) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	productType, err := catalog.ProductTypeFromString(req.ProductType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(
		req.SKU, req.Name, req.Description, req.Unit, req.Price, productType, req.CategoryID)
	if err != nil {
		return err
	}

	created, err := s.createProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, toProductResponse(created))
}

// UpdateProduct handles PUT /api/v1/products/:id. The SKU is immutable;
// price changes only affect future orders.
//
//	@Summary	Edit a product
//	@Tags		catalog
//	@Param		id		path	int						true	"Product ID"
//	@Param		request	body	updateProductRequest	true	"New product content"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/products/{id} [put]
func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	productType, err := catalog.ProductTypeFromString(req.ProductType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(
		id, req.Name, req.Description, req.Unit, req.Price, productType, req.CategoryID, req.Active)
	if err != nil {
		return err
	}

	updated, err := s.updateProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toProductResponse(updated))
}

// ListCategories handles GET /api/v1/categories.
//
//	@Summary	List categories with product counts
//	@Tags		catalog
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/categories [get]
func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.listCategoriesHandler.Handle(c.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, categories)
}

// CreateCategory handles POST /api/v1/categories.
//
//	@Summary	Create a category
//	@Tags		catalog
//	@Param		request	body	createCategoryRequest	true	"Category to create"
//	@Success	201	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/categories [post]
func (s *Server) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCategoryCommand(req.Name, req.Description)
	if err != nil {
		return err
	}

	created, err := s.createCategoryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, toCategoryResponse(created))
}
