package models

import "time"

type SearchRequest struct {
	Destination      string     `json:"destination"`
	DepartureAirport string     `json:"departureAirport,omitempty"`
	FromDate         *time.Time `json:"fromDate,omitempty"`
	ToDate           *time.Time `json:"toDate,omitempty"`
}

type BookRequest struct {
	OptionCode    string        `json:"optionCode"`
	SearchRequest SearchRequest `json:"searchRequest"`
}

type CheckStatusRequest struct {
	BookingCode string `json:"bookingCode" query:"bookingCode"`
}

// Validate returns a field-to-messages map, or nil when the request is valid.
func (r SearchRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.Destination == "" {
		errs["destination"] = append(errs["destination"], "Destination is required.")
	}
	if r.FromDate == nil {
		errs["fromDate"] = append(errs["fromDate"], "From Date is required.")
	}
	if r.ToDate == nil {
		errs["toDate"] = append(errs["toDate"], "To Date is required.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r BookRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.OptionCode == "" {
		errs["optionCode"] = append(errs["optionCode"], "OptionCode is required")
	}

	s := r.SearchRequest
	if s.Destination == "" {
		errs["searchRequest.destination"] = append(errs["searchRequest.destination"], "Destination is required")
	}
	if s.FromDate == nil {
		errs["searchRequest.fromDate"] = append(errs["searchRequest.fromDate"], "FromDate is required")
	} else {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if s.FromDate.Before(today) {
			errs["searchRequest.fromDate"] = append(errs["searchRequest.fromDate"], "FromDate cannot be in the past")
		}
		if s.ToDate != nil && s.FromDate.After(*s.ToDate) {
			errs["searchRequest.fromDate"] = append(errs["searchRequest.fromDate"], "FromDate must be before or equal to ToDate")
		}
	}
	if s.ToDate == nil {
		errs["searchRequest.toDate"] = append(errs["searchRequest.toDate"], "ToDate is required")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r CheckStatusRequest) Validate() map[string][]string {
	if r.BookingCode == "" {
		return map[string][]string{"bookingCode": {"BookingCode is required"}}
	}
	return nil
}
