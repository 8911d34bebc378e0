package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasdika/travelbooking/internal/models"
)

type stubService struct {
	searchResp models.Response[models.SearchResult]
	bookResp   models.Response[models.BookResult]
	statusResp models.Response[models.StatusResult]

	gotSearch models.SearchRequest
	gotBook   models.BookRequest
	gotStatus models.CheckStatusRequest
}

func (s *stubService) Search(ctx context.Context, req models.SearchRequest) models.Response[models.SearchResult] {
	s.gotSearch = req
	return s.searchResp
}

func (s *stubService) Book(req models.BookRequest) models.Response[models.BookResult] {
	s.gotBook = req
	return s.bookResp
}

func (s *stubService) CheckStatus(req models.CheckStatusRequest) models.Response[models.StatusResult] {
	s.gotStatus = req
	return s.statusResp
}

func doJSON(h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h(c)
}

func TestSearch_ValidationFailure(t *testing.T) {
	h := NewTravelHandler(&stubService{})

	rec, err := doJSON(h.Search, http.MethodPost, "/api/v1/search", `{}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response[models.SearchResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, models.NotificationBadRequest, resp.NotificationType)
	assert.Contains(t, resp.Errors, "destination")
	assert.Contains(t, resp.Errors, "fromDate")
	assert.Contains(t, resp.Errors, "toDate")
}

func TestSearch_PassesRequestThrough(t *testing.T) {
	stub := &stubService{
		searchResp: models.Response[models.SearchResult]{
			Success: true,
			Data: &models.SearchResult{
				Options:    []models.Option{{OptionCode: "o1", HotelCode: "101"}},
				SearchType: models.SearchTypeHotelOnly,
			},
			NotificationType: models.NotificationSuccess,
		},
	}
	h := NewTravelHandler(stub)

	from := time.Now().AddDate(0, 0, 30).UTC().Format(time.RFC3339)
	to := time.Now().AddDate(0, 0, 37).UTC().Format(time.RFC3339)
	body := `{"destination":"PAR","fromDate":"` + from + `","toDate":"` + to + `"}`

	rec, err := doJSON(h.Search, http.MethodPost, "/api/v1/search", body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PAR", stub.gotSearch.Destination)
	assert.Empty(t, stub.gotSearch.DepartureAirport)

	var resp models.Response[models.SearchResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, models.SearchTypeHotelOnly, resp.Data.SearchType)
	assert.Len(t, resp.Data.Options, 1)
}

func TestSearch_ServerErrorStatus(t *testing.T) {
	stub := &stubService{
		searchResp: models.Response[models.SearchResult]{
			Message:          "We're having trouble finding results right now. Please try again in a moment.",
			NotificationType: models.NotificationServerError,
		},
	}
	h := NewTravelHandler(stub)

	from := time.Now().AddDate(0, 0, 30).UTC().Format(time.RFC3339)
	body := `{"destination":"PAR","fromDate":"` + from + `","toDate":"` + from + `"}`

	rec, err := doJSON(h.Search, http.MethodPost, "/api/v1/search", body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBook_ValidationFailure(t *testing.T) {
	h := NewTravelHandler(&stubService{})

	rec, err := doJSON(h.Book, http.MethodPost, "/api/v1/book", `{"searchRequest":{}}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response[models.BookResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "optionCode")
	assert.Contains(t, resp.Errors, "searchRequest.destination")
}

func TestBook_Success(t *testing.T) {
	stub := &stubService{
		bookResp: models.Response[models.BookResult]{
			Success:          true,
			Data:             &models.BookResult{BookingCode: "Ab3xY9", BookingTime: time.Now()},
			NotificationType: models.NotificationSuccess,
		},
	}
	h := NewTravelHandler(stub)

	from := time.Now().AddDate(0, 0, 30).UTC().Format(time.RFC3339)
	to := time.Now().AddDate(0, 0, 37).UTC().Format(time.RFC3339)
	body := `{"optionCode":"o1","searchRequest":{"destination":"PAR","fromDate":"` + from + `","toDate":"` + to + `"}}`

	rec, err := doJSON(h.Book, http.MethodPost, "/api/v1/book", body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "o1", stub.gotBook.OptionCode)

	var resp models.Response[models.BookResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Ab3xY9", resp.Data.BookingCode)
}

func TestCheckStatus_BindsQueryParam(t *testing.T) {
	stub := &stubService{
		statusResp: models.Response[models.StatusResult]{
			Data:             &models.StatusResult{Status: models.StatusPending},
			NotificationType: models.NotificationInfo,
		},
	}
	h := NewTravelHandler(stub)

	rec, err := doJSON(h.CheckStatus, http.MethodGet, "/api/v1/checkstatus?bookingCode=Ab3xY9", "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ab3xY9", stub.gotStatus.BookingCode)
}

func TestCheckStatus_MissingCode(t *testing.T) {
	h := NewTravelHandler(&stubService{})

	rec, err := doJSON(h.CheckStatus, http.MethodGet, "/api/v1/checkstatus", "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response[models.StatusResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "bookingCode")
}

func TestHealthHandler(t *testing.T) {
	rec, err := doJSON(HealthHandler, http.MethodGet, "/health", "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
