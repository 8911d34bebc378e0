package models

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestSearchRequestValidate(t *testing.T) {
	future := time.Now().AddDate(0, 0, 30)

	t.Run("valid", func(t *testing.T) {
		req := SearchRequest{
			Destination: "PAR",
			FromDate:    datePtr(future),
			ToDate:      datePtr(future.AddDate(0, 0, 7)),
		}
		assert.Nil(t, req.Validate())
	})

	t.Run("missing everything", func(t *testing.T) {
		errs := SearchRequest{}.Validate()
		assert.Equal(t, []string{"Destination is required."}, errs["destination"])
		assert.Equal(t, []string{"From Date is required."}, errs["fromDate"])
		assert.Equal(t, []string{"To Date is required."}, errs["toDate"])
	})
}

func TestBookRequestValidate(t *testing.T) {
	future := time.Now().AddDate(0, 0, 30)

	valid := BookRequest{
		OptionCode: "opt-1",
		SearchRequest: SearchRequest{
			Destination: "PAR",
			FromDate:    datePtr(future),
			ToDate:      datePtr(future.AddDate(0, 0, 7)),
		},
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, valid.Validate())
	})

	t.Run("missing option code", func(t *testing.T) {
		req := valid
		req.OptionCode = ""
		errs := req.Validate()
		assert.Equal(t, []string{"OptionCode is required"}, errs["optionCode"])
	})

	t.Run("from date in the past", func(t *testing.T) {
		req := valid
		req.SearchRequest.FromDate = datePtr(time.Now().AddDate(0, 0, -2))
		errs := req.Validate()
		assert.Contains(t, errs["searchRequest.fromDate"], "FromDate cannot be in the past")
	})

	t.Run("from date after to date", func(t *testing.T) {
		req := valid
		req.SearchRequest.FromDate = datePtr(future.AddDate(0, 0, 10))
		req.SearchRequest.ToDate = datePtr(future)
		errs := req.Validate()
		assert.Contains(t, errs["searchRequest.fromDate"], "FromDate must be before or equal to ToDate")
	})

	t.Run("empty embedded search request", func(t *testing.T) {
		errs := BookRequest{OptionCode: "opt-1"}.Validate()
		assert.Contains(t, errs, "searchRequest.destination")
		assert.Contains(t, errs, "searchRequest.fromDate")
		assert.Contains(t, errs, "searchRequest.toDate")
	})
}

func TestCheckStatusRequestValidate(t *testing.T) {
	assert.Nil(t, CheckStatusRequest{BookingCode: "Ab3xY9"}.Validate())

	errs := CheckStatusRequest{}.Validate()
	assert.Equal(t, []string{"BookingCode is required"}, errs["bookingCode"])
}

func TestNotificationTypeHTTPStatus(t *testing.T) {
	tests := []struct {
		nt   NotificationType
		want int
	}{
		{NotificationSuccess, http.StatusOK},
		{NotificationBadRequest, http.StatusBadRequest},
		{NotificationNotFound, http.StatusNotFound},
		{NotificationServerError, http.StatusInternalServerError},
		{NotificationInfo, http.StatusOK},
		{NotificationType("Bogus"), http.StatusOK},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.nt.HTTPStatus(), string(tt.nt))
	}
}
