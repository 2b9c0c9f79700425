package handler

import (
	"net/http"
	"strings"

	"gearshare/internal/dto"
	"gearshare/internal/models"
	"gearshare/internal/service"

	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/requests")
	g.POST("", h.Create)
	g.GET("", h.ListOwn)
	g.GET("/all", h.ListOthers)
	g.GET("/:id", h.GetByID)
}

func (h *RequestHandler) Create(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.ItemRequestDescription
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}

	request, err := h.svc.Create(c.Request().Context(), &models.ItemRequest{
		Description: req.Description,
		RequesterID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToRequestResponse(&service.RequestDetails{Request: *request}))
}

func (h *RequestHandler) ListOwn(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	requests, err := h.svc.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *RequestHandler) ListOthers(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}
	requests, err := h.svc.ListOthers(c.Request().Context(), userID, from, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(requests))
}

func (h *RequestHandler) GetByID(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	details, err := h.svc.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToRequestResponse(details))
}

func toRequestResponses(details []service.RequestDetails) []dto.RequestResponse {
	resp := make([]dto.RequestResponse, 0, len(details))
	for i := range details {
		resp = append(resp, dto.ToRequestResponse(&details[i]))
	}
	return resp
}
