package models

import (
	"net/http"
	"time"
)

type NotificationType string

const (
	NotificationSuccess     NotificationType = "Success"
	NotificationBadRequest  NotificationType = "BadRequest"
	NotificationNotFound    NotificationType = "NotFound"
	NotificationServerError NotificationType = "ServerError"
	NotificationInfo        NotificationType = "Info"
)

// HTTPStatus maps a notification type to the transport status code.
// Unknown values fall through to 200.
func (n NotificationType) HTTPStatus() int {
	switch n {
	case NotificationBadRequest:
		return http.StatusBadRequest
	case NotificationNotFound:
		return http.StatusNotFound
	case NotificationServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

type SearchType string

const (
	SearchTypeHotelOnly        SearchType = "HotelOnly"
	SearchTypeLastMinuteHotels SearchType = "LastMinuteHotels"
	SearchTypeHotelAndFlight   SearchType = "HotelAndFlight"
)

type BookingStatus string

const (
	StatusPending BookingStatus = "Pending"
	StatusSuccess BookingStatus = "Success"
	StatusFailed  BookingStatus = "Failed"
)

// Response is the uniform envelope returned by every operation.
type Response[T any] struct {
	Data             *T                  `json:"data,omitempty"`
	Success          bool                `json:"success"`
	Message          string              `json:"message,omitempty"`
	Errors           map[string][]string `json:"errors,omitempty"`
	NotificationType NotificationType    `json:"notificationType"`
}

// ValidationFailure wraps per-field validation errors in a BadRequest envelope.
func ValidationFailure[T any](errs map[string][]string) Response[T] {
	return Response[T]{
		Errors:           errs,
		NotificationType: NotificationBadRequest,
	}
}

type SearchResult struct {
	Options    []Option   `json:"options"`
	SearchType SearchType `json:"searchType"`
}

type BookResult struct {
	BookingCode string    `json:"bookingCode"`
	BookingTime time.Time `json:"bookingTime"`
}

type StatusResult struct {
	Status BookingStatus `json:"status"`
}
