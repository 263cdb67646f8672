package http

import (
	"net/http"

	"ckms/internal/core/application/usecases/commands"
	"ckms/internal/core/application/usecases/queries"
	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/core/domain/model/store"
	"ckms/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// ListStores handles GET /api/v1/stores.
//
//	@Summary	List stores
//	@Tags		stores
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/stores [get]
func (s *Server) ListStores(c echo.Context) error {
	stores, err := s.listStoresHandler.Handle(c.Request().Context(), queries.NewListStoresQuery())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, stores)
}

// GetStore handles GET /api/v1/stores/:id.
//
//	@Summary	Get one store
//	@Tags		stores
//	@Param		id	path	int	true	"Store ID"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/stores/{id} [get]
func (s *Server) GetStore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetStoreQuery(id)
	if err != nil {
		return err
	}

	view, err := s.getStoreHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, view)
}

// CreateStore handles POST /api/v1/stores.
//
//	@Summary	Create a store
//	@Tags		stores
//	@Param		request	body	createStoreRequest	true	"Store to create"
//	@Success	201	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/stores [post]
func (s *Server) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	storeType, err := store.TypeFromString(req.StoreType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateStoreCommand(req.Name, req.Address, req.Phone, storeType)
	if err != nil {
		return err
	}

	created, err := s.createStoreHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, toStoreResponse(created))
}

// ListUsers handles GET /api/v1/users.
//
//	@Summary	List user profiles
//	@Tags		users
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/users [get]
func (s *Server) ListUsers(c echo.Context) error {
	users, err := s.listUsersHandler.Handle(c.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, users)
}

// GetMe handles GET /api/v1/users/me.
//
//	@Summary	Get the caller's own profile
//	@Tags		users
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/users/me [get]
func (s *Server) GetMe(c echo.Context) error {
	u, err := authUser(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMeQuery(u.ID)
	if err != nil {
		return err
	}

	view, err := s.getMeHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, view)
}

// UpdateUserRole handles PATCH /api/v1/users/:id/role.
//
//	@Summary	Assign a user's role and store binding
//	@Tags		users
//	@Param		id		path	string					true	"User ID"
//	@Param		request	body	updateUserRoleRequest	true	"New role"
//	@Success	200	{object}	Envelope
//	@Security	BearerAuth
//	@Router		/users/{id}/role [patch]
func (s *Server) UpdateUserRole(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req updateUserRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserRoleCommand(id, role, req.StoreID)
	if err != nil {
		return err
	}

	updated, err := s.updateUserRoleHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toUserResponse(updated))
}
