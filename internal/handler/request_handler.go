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

// ItemRequestHandler handles HTTP requests for item requests.
type ItemRequestHandler struct {
	service service.ItemRequestServicer
	paging  config.PaginationConfig
	log     *zerolog.Logger
}

// NewItemRequestHandler creates a new ItemRequestHandler.
func NewItemRequestHandler(service service.ItemRequestServicer, paging config.PaginationConfig, log *zerolog.Logger) *ItemRequestHandler {
	return &ItemRequestHandler{service: service, paging: paging, log: log}
}

// CreateRequest godoc
// @Summary      Ask for an item
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header    int                              true  "Caller user ID"
// @Param        request           body      models.CreateItemRequestRequest  true  "What is needed"
// @Success      201               {object}  response.Response{data=models.ItemRequest}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /requests [post]
func (h *ItemRequestHandler) CreateRequest(c *gin.Context) {
	var req models.CreateItemRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Created(c, created)
}

// ListOwnRequests godoc
// @Summary      List own requests
// @Description  The caller's requests, newest first, each with the items offered in answer
// @Tags         requests
// @Produce      json
// @Param        X-Sharer-User-Id  header    int  true  "Caller user ID"
// @Success      200               {object}  response.Response{data=[]models.ItemRequest}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /requests [get]
func (h *ItemRequestHandler) ListOwnRequests(c *gin.Context) {
	requests, err := h.service.ListOwnRequests(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, requests)
}

// ListOtherRequests godoc
// @Summary      List requests of other users
// @Tags         requests
// @Produce      json
// @Param        X-Sharer-User-Id  header    int  true   "Caller user ID"
// @Param        from              query     int  false  "First row index"  default(0)
// @Param        size              query     int  false  "Page size"        default(10) maximum(100)
// @Success      200               {object}  response.Response{data=[]models.ItemRequest}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /requests/all [get]
func (h *ItemRequestHandler) ListOtherRequests(c *gin.Context) {
	page, ok := pageFrom(c, h.paging)
	if !ok {
		return
	}

	requests, err := h.service.ListOtherRequests(c.Request.Context(), middleware.GetUserID(c), page)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, requests)
}

// GetRequest godoc
// @Summary      Get request
// @Tags         requests
// @Produce      json
// @Param        X-Sharer-User-Id  header    int  true  "Caller user ID"
// @Param        id                path      int  true  "Request ID"
// @Success      200               {object}  response.Response{data=models.ItemRequest}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /requests/{id} [get]
func (h *ItemRequestHandler) GetRequest(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.GetRequest(c.Request.Context(), middleware.GetUserID(c), requestID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, found)
}
