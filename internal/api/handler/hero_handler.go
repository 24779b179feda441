package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// HeroHandler exposes hero CRUD endpoints.
type HeroHandler struct {
	heroService ports.HeroService
}

func NewHeroHandler(heroService ports.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

type createHeroRequest struct {
	Name  string `json:"name"  validate:"required"`
	Class string `json:"class" validate:"required,oneof=warrior mage rogue"`
}

type updateHeroRequest struct {
	Name       string `json:"name"       validate:"required"`
	Class      string `json:"class"      validate:"required,oneof=warrior mage rogue"`
	Level      int    `json:"level"      validate:"required,gt=0"`
	Experience int    `json:"experience" validate:"gte=0"`
}

// List returns every hero with owner name and item count.
//
// @Summary      List heroes
// @Tags         heroes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.HeroProjection
// @Router       /api/heroes [get]
func (h *HeroHandler) List(c echo.Context) error {
	heroes, err := h.heroService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, heroes)
}

// Get returns a single hero by id.
//
// @Summary      Get a hero
// @Tags         heroes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hero id"
// @Success      200  {object}  ports.HeroProjection
// @Failure      404  {object}  map[string]string
// @Router       /api/heroes/{id} [get]
func (h *HeroHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	hero, err := h.heroService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}

// Create adds a level-1 hero owned by the authenticated user.
//
// @Summary      Create a hero
// @Tags         heroes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHeroRequest  true  "Hero details"
// @Success      201   {object}  ports.HeroProjection
// @Failure      400   {object}  map[string]string
// @Router       /api/heroes [post]
func (h *HeroHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createHeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hero, err := h.heroService.Create(c.Request().Context(), ports.CreateHeroInput{
		UserID: userID,
		Name:   req.Name,
		Class:  domain.HeroClass(req.Class),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hero)
}

// Update changes a hero's mutable fields.
//
// @Summary      Update a hero
// @Tags         heroes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Hero id"
// @Param        body  body      updateHeroRequest  true  "New hero values"
// @Success      200   {object}  ports.HeroProjection
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/heroes/{id} [put]
func (h *HeroHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateHeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hero, err := h.heroService.Update(c.Request().Context(), ports.UpdateHeroInput{
		ID:         id,
		Name:       req.Name,
		Class:      domain.HeroClass(req.Class),
		Level:      req.Level,
		Experience: req.Experience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}

// Delete removes a hero.
//
// @Summary      Delete a hero
// @Tags         heroes
// @Security     BearerAuth
// @Param        id  path  string  true  "Hero id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/heroes/{id} [delete]
func (h *HeroHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.heroService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
