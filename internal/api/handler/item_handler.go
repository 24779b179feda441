package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// ItemHandler exposes item CRUD endpoints.
type ItemHandler struct {
	itemService ports.ItemService
}

func NewItemHandler(itemService ports.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

type createItemRequest struct {
	HeroID        uuid.UUID `json:"hero_id"        validate:"required"`
	Name          string    `json:"name"           validate:"required"`
	Description   string    `json:"description"`
	Type          string    `json:"type"           validate:"required,oneof=weapon armor consumable miscellaneous"`
	Rarity        string    `json:"rarity"         validate:"required,oneof=common uncommon rare epic legendary"`
	RequiredLevel int       `json:"required_level" validate:"gte=0"`
	Quantity      int       `json:"quantity"       validate:"required,gt=0"`
}

type updateItemRequest struct {
	Name          string `json:"name"           validate:"required"`
	Description   string `json:"description"`
	Type          string `json:"type"           validate:"required,oneof=weapon armor consumable miscellaneous"`
	Rarity        string `json:"rarity"         validate:"required,oneof=common uncommon rare epic legendary"`
	RequiredLevel int    `json:"required_level" validate:"gte=0"`
	Quantity      int    `json:"quantity"       validate:"required,gt=0"`
	IsEquipped    bool   `json:"is_equipped"`
}

// List returns every item.
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Item
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.itemService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single item by id.
//
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.Item
// @Failure      404  {object}  map[string]string
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.itemService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create adds an item to a hero's inventory.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  map[string]string
// @Router       /api/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.Create(c.Request().Context(), ports.CreateItemInput{
		HeroID:        req.HeroID,
		Name:          req.Name,
		Description:   req.Description,
		Type:          domain.ItemType(req.Type),
		Rarity:        domain.ItemRarity(req.Rarity),
		RequiredLevel: req.RequiredLevel,
		Quantity:      req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update changes an item's mutable fields.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Item id"
// @Param        body  body      updateItemRequest  true  "New item values"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.Update(c.Request().Context(), ports.UpdateItemInput{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Type:          domain.ItemType(req.Type),
		Rarity:        domain.ItemRarity(req.Rarity),
		RequiredLevel: req.RequiredLevel,
		Quantity:      req.Quantity,
		IsEquipped:    req.IsEquipped,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes an item.
//
// @Summary      Delete an item
// @Tags         items
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.itemService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
