package manager

// User-facing envelope and push messages.
const (
	MsgSearchError        = "We're having trouble finding results right now. Please try again in a moment."
	MsgBookingFailed      = "Booking failed."
	MsgInvalidBookingCode = "Invalid or missing booking code. Please check and try again."
	MsgCheckStatusError   = "An unexpected error occurred while processing your booking. Please try again later."
	MsgBookingCompleted   = "Booking completed successfully!"
	MsgBookingPending     = "Booking is pending, please wait while we confirm your details."
)
