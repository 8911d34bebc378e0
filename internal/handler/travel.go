package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prasdika/travelbooking/internal/models"
)

// TravelService is the core consumed by the HTTP layer.
type TravelService interface {
	Search(ctx context.Context, req models.SearchRequest) models.Response[models.SearchResult]
	Book(req models.BookRequest) models.Response[models.BookResult]
	CheckStatus(req models.CheckStatusRequest) models.Response[models.StatusResult]
}

type TravelHandler struct {
	service TravelService
}

func NewTravelHandler(service TravelService) *TravelHandler {
	return &TravelHandler{service: service}
}

func (h *TravelHandler) Search(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure[models.SearchResult](c, err)
	}

	if errs := req.Validate(); errs != nil {
		return respond(c, models.ValidationFailure[models.SearchResult](errs))
	}

	return respond(c, h.service.Search(c.Request().Context(), req))
}

func (h *TravelHandler) Book(c echo.Context) error {
	var req models.BookRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure[models.BookResult](c, err)
	}

	if errs := req.Validate(); errs != nil {
		return respond(c, models.ValidationFailure[models.BookResult](errs))
	}

	return respond(c, h.service.Book(req))
}

func (h *TravelHandler) CheckStatus(c echo.Context) error {
	var req models.CheckStatusRequest
	if err := c.Bind(&req); err != nil {
		return bindFailure[models.StatusResult](c, err)
	}

	if errs := req.Validate(); errs != nil {
		return respond(c, models.ValidationFailure[models.StatusResult](errs))
	}

	return respond(c, h.service.CheckStatus(req))
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func respond[T any](c echo.Context, resp models.Response[T]) error {
	return c.JSON(resp.NotificationType.HTTPStatus(), resp)
}

func bindFailure[T any](c echo.Context, err error) error {
	return respond(c, models.Response[T]{
		Message:          "Failed to parse request: " + err.Error(),
		NotificationType: models.NotificationBadRequest,
	})
}
