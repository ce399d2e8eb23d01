package handler

import (
	"shareit/internal/config"
	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/service"
	"shareit/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ItemHandler handles HTTP requests for items and their comments.
type ItemHandler struct {
	service service.ItemServicer
	paging  config.PaginationConfig
	log     *zerolog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service service.ItemServicer, paging config.PaginationConfig, log *zerolog.Logger) *ItemHandler {
	return &ItemHandler{service: service, paging: paging, log: log}
}

// CreateItem godoc
// @Summary      Create item
// @Description  List a new item owned by the caller, optionally answering an item request
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header    int                       true  "Caller user ID"
// @Param        request           body      models.CreateItemRequest  true  "Item to create"
// @Success      201               {object}  response.Response{data=models.Item}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Created(c, item)
}

// UpdateItem godoc
// @Summary      Update item
// @Description  Patch the provided fields of an item. Only the owner may update.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header    int                       true  "Caller user ID"
// @Param        id                path      int                       true  "Item ID"
// @Param        request           body      models.UpdateItemRequest  true  "Fields to update"
// @Success      200               {object}  response.Response{data=models.Item}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /items/{id} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), middleware.GetUserID(c), itemID, &req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, item)
}

// GetItem godoc
// @Summary      Get item
// @Description  Item with its comments. The owner also sees the last and next bookings.
// @Tags         items
// @Produce      json
// @Param        X-Sharer-User-Id  header    int  true  "Caller user ID"
// @Param        id                path      int  true  "Item ID"
// @Success      200               {object}  response.Response{data=models.Item}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), middleware.GetUserID(c), itemID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, item)
}

// ListOwnerItems godoc
// @Summary      List own items
// @Description  Items owned by the caller ordered by id, each with comments and last/next bookings
// @Tags         items
// @Produce      json
// @Param        X-Sharer-User-Id  header    int  true   "Caller user ID"
// @Param        from              query     int  false  "First row index"  default(0)
// @Param        size              query     int  false  "Page size"        default(10) maximum(100)
// @Success      200               {object}  response.Response{data=[]models.Item}
// @Failure      400               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /items [get]
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	page, ok := pageFrom(c, h.paging)
	if !ok {
		return
	}

	items, err := h.service.ListOwnerItems(c.Request.Context(), middleware.GetUserID(c), page)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, items)
}

// SearchItems godoc
// @Summary      Search items
// @Description  Case-insensitive search over name and description of available items. Blank text returns an empty list.
// @Tags         items
// @Produce      json
// @Param        text  query     string  false  "Search text"
// @Param        from  query     int     false  "First row index"  default(0)
// @Param        size  query     int     false  "Page size"        default(10) maximum(100)
// @Success      200   {object}  response.Response{data=[]models.Item}
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /items/search [get]
func (h *ItemHandler) SearchItems(c *gin.Context) {
	page, ok := pageFrom(c, h.paging)
	if !ok {
		return
	}

	items, err := h.service.SearchItems(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, items)
}

// DeleteItem godoc
// @Summary      Delete item
// @Tags         items
// @Param        id   path  int  true  "Item ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		handleError(c, h.log, err)
		return
	}

	response.NoContent(c)
}

// AddComment godoc
// @Summary      Comment on item
// @Description  Allowed only after the caller's approved booking of the item has ended
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header    int                          true  "Caller user ID"
// @Param        id                path      int                          true  "Item ID"
// @Param        request           body      models.CreateCommentRequest  true  "Comment"
// @Success      201               {object}  response.Response{data=models.Comment}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), middleware.GetUserID(c), itemID, &req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Created(c, comment)
}
