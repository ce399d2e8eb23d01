package handler

import (
	"strconv"

	"shareit/internal/config"
	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/service"
	"shareit/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service service.BookingServicer
	paging  config.PaginationConfig
	log     *zerolog.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service service.BookingServicer, paging config.PaginationConfig, log *zerolog.Logger) *BookingHandler {
	return &BookingHandler{service: service, paging: paging, log: log}
}

// CreateBooking godoc
// @Summary      Book item
// @Description  Request an item for a future period. The booking starts in WAITING.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header    int                          true  "Caller user ID"
// @Param        request           body      models.CreateBookingRequest  true  "Booking period"
// @Success      201               {object}  response.Response{data=models.Booking}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Created(c, booking)
}

// SetApproval godoc
// @Summary      Approve or reject booking
// @Description  The item owner moves a WAITING booking to APPROVED or REJECTED
// @Tags         bookings
// @Produce      json
// @Param        X-Sharer-User-Id  header    int   true  "Caller user ID"
// @Param        id                path      int   true  "Booking ID"
// @Param        approved          query     bool  true  "Approve (true) or reject (false)"
// @Success      200               {object}  response.Response{data=models.Booking}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      409               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /bookings/{id} [patch]
func (h *BookingHandler) SetApproval(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	raw, present := c.GetQuery("approved")
	if !present {
		response.BadRequest(c, "approved query parameter is required")
		return
	}
	approved, err := strconv.ParseBool(raw)
	if err != nil {
		response.BadRequest(c, "approved must be true or false")
		return
	}

	booking, err := h.service.SetApproval(c.Request.Context(), middleware.GetUserID(c), bookingID, approved)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, booking)
}

// GetBooking godoc
// @Summary      Get booking
// @Description  Visible to the booker and the item owner only
// @Tags         bookings
// @Produce      json
// @Param        X-Sharer-User-Id  header    int  true  "Caller user ID"
// @Param        id                path      int  true  "Booking ID"
// @Success      200               {object}  response.Response{data=models.Booking}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), middleware.GetUserID(c), bookingID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, booking)
}

// ListForBooker godoc
// @Summary      List own bookings
// @Description  Bookings made by the caller, newest start first
// @Tags         bookings
// @Produce      json
// @Param        X-Sharer-User-Id  header    int     true   "Caller user ID"
// @Param        state             query     string  false  "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"  default(ALL)
// @Param        from              query     int     false  "First row index"                                  default(0)
// @Param        size              query     int     false  "Page size"                                        default(10) maximum(100)
// @Success      200               {object}  response.Response{data=[]models.Booking}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	page, ok := pageFrom(c, h.paging)
	if !ok {
		return
	}

	bookings, err := h.service.ListForBooker(c.Request.Context(), middleware.GetUserID(c), stateQuery(c), page)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, bookings)
}

// ListForOwner godoc
// @Summary      List bookings of own items
// @Description  Bookings of items owned by the caller, newest start first
// @Tags         bookings
// @Produce      json
// @Param        X-Sharer-User-Id  header    int     true   "Caller user ID"
// @Param        state             query     string  false  "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"  default(ALL)
// @Param        from              query     int     false  "First row index"                                  default(0)
// @Param        size              query     int     false  "Page size"                                        default(10) maximum(100)
// @Success      200               {object}  response.Response{data=[]models.Booking}
// @Failure      400               {object}  response.Response
// @Failure      404               {object}  response.Response
// @Failure      500               {object}  response.Response
// @Router       /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	page, ok := pageFrom(c, h.paging)
	if !ok {
		return
	}

	bookings, err := h.service.ListForOwner(c.Request.Context(), middleware.GetUserID(c), stateQuery(c), page)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	response.Success(c, bookings)
}

// stateQuery defaults to ALL only when the parameter is absent. An explicit
// empty value is passed through and rejected as an unknown state.
func stateQuery(c *gin.Context) string {
	return c.DefaultQuery("state", string(models.StateAll))
}
