package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/api/metrics"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// ClanHandler exposes the clan lifecycle endpoints.
type ClanHandler struct {
	clanService ports.ClanService
}

func NewClanHandler(clanService ports.ClanService) *ClanHandler {
	return &ClanHandler{clanService: clanService}
}

// List returns every clan with founder name and member count.
//
// @Summary      List clans
// @Tags         clans
// @Produce      json
// @Success      200  {array}  ports.ClanProjection
// @Router       /api/clans [get]
func (h *ClanHandler) List(c echo.Context) error {
	clans, err := h.clanService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clans)
}

// Get returns a single clan by id.
//
// @Summary      Get a clan
// @Tags         clans
// @Produce      json
// @Param        id   path      string  true  "Clan id"
// @Success      200  {object}  ports.ClanProjection
// @Failure      404  {object}  map[string]string
// @Router       /api/clans/{id} [get]
func (h *ClanHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	clan, err := h.clanService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clan)
}

// Members returns the member list of a clan. A missing clan yields an empty
// list here, while Get reports 404 for the same id.
//
// @Summary      List clan members
// @Tags         clans
// @Produce      json
// @Param        id   path     string  true  "Clan id"
// @Success      200  {array}  ports.ClanMemberProjection
// @Router       /api/clans/{id}/members [get]
func (h *ClanHandler) Members(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	members, err := h.clanService.ListMembers(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// Create founds a new clan with the authenticated user as founder.
//
// @Summary      Create a clan
// @Tags         clans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClanRequest  true  "Clan details"
// @Success      201   {object}  ports.ClanProjection
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/clans [post]
func (h *ClanHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createClanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	clan, err := h.clanService.Create(c.Request().Context(), ports.CreateClanInput{
		Name:        req.Name,
		Tag:         req.Tag,
		Description: req.Description,
		FounderID:   userID,
	})
	if err != nil {
		return err
	}

	metrics.ClanOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, clan)
}

// Update changes a clan's name, tag and description. Only the founder may
// call it. The clan id comes from the route alone.
//
// @Summary      Update a clan
// @Tags         clans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Clan id"
// @Param        body  body      updateClanRequest  true  "New clan values"
// @Success      200   {object}  ports.ClanProjection
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/clans/{id} [put]
func (h *ClanHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateClanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	clan, err := h.clanService.Update(c.Request().Context(), ports.UpdateClanInput{
		ID:            id,
		Name:          req.Name,
		Tag:           req.Tag,
		Description:   req.Description,
		CurrentUserID: userID,
	})
	if err != nil {
		return err
	}

	metrics.ClanOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, clan)
}

// Delete disbands a clan. Only the founder may call it; every member's clan
// reference is cleared in the same transaction.
//
// @Summary      Delete a clan
// @Tags         clans
// @Security     BearerAuth
// @Param        id  path  string  true  "Clan id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/clans/{id} [delete]
func (h *ClanHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.clanService.Delete(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "clan not found")
	}

	metrics.ClanOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
