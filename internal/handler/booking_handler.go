package handler

import (
	"context"
	"net/http"
	"strconv"

	"gearshare/internal/dto"
	"gearshare/internal/models"
	"gearshare/internal/service"

	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/bookings")
	g.POST("", h.Create)
	g.GET("", h.ListByBooker)
	g.GET("/owner", h.ListByOwner)
	g.GET("/:id", h.GetByID)
	g.PATCH("/:id", h.UpdateStatus)
}

func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ItemID == 0 || req.Start.IsZero() || req.End.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "itemId, start and end are required")
	}

	booking := &models.Booking{
		ItemID:    req.ItemID,
		StartDate: req.Start,
		EndDate:   req.End,
		BookerID:  userID,
	}

	created, err := h.svc.Create(c.Request().Context(), booking)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(created))
}

func (h *BookingHandler) GetByID(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetByID(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved parameter is required")
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), id, userID, approved)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListByBooker(c echo.Context) error {
	return h.list(c, h.svc.ListByBooker)
}

func (h *BookingHandler) ListByOwner(c echo.Context) error {
	return h.list(c, h.svc.ListByOwner)
}

func (h *BookingHandler) list(
	c echo.Context,
	query func(ctx context.Context, userID uint, state models.State, from, size int) ([]models.Booking, int64, error),
) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}

	// The state token is validated before anything reaches storage.
	state, err := models.ParseState(c.QueryParam("state"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	bookings, total, err := query(c.Request().Context(), userID, state, from, size)
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}
	c.Response().Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	return c.JSON(http.StatusOK, resp)
}
