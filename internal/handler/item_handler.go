package handler

import (
	"net/http"
	"strings"

	"gearshare/internal/dto"
	"gearshare/internal/models"
	"gearshare/internal/service"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/items")
	g.GET("", h.ListByOwner)
	g.POST("", h.Create)
	g.GET("/search", h.Search)
	g.GET("/:id", h.GetByID)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/comment", h.AddComment)
}

func (h *ItemHandler) ListByOwner(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	items, err := h.svc.ListByOwner(c.Request().Context(), userID, from, size)
	if err != nil {
		return err
	}
	resp := make([]dto.ItemDetailResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.ToItemDetailResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) GetByID(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	details, err := h.svc.GetByID(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToItemDetailResponse(details))
}

func (h *ItemHandler) Create(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" || req.Available == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name, description and available are required")
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     userID,
		RequestID:   req.RequestID,
	}
	created, err := h.svc.Create(c.Request().Context(), item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToItemResponse(created))
}

func (h *ItemHandler) Update(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.Update(c.Request().Context(), id, userID, service.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (h *ItemHandler) Search(c echo.Context) error {
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("text"), from, size)
	if err != nil {
		return err
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.ToItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) AddComment(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	comment, err := h.svc.AddComment(c.Request().Context(), id, userID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToCommentResponse(*comment))
}
