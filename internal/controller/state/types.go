package state

// UserState is the chat's position inside a multi-step dialog.
type UserState string

const (
	StateNone UserState = "" // no active dialog

	// Auth dialogs
	StateLoginEmail     UserState = "login_email"
	StateLoginPassword  UserState = "login_password"
	StateSignupName     UserState = "signup_name"
	StateSignupEmail    UserState = "signup_email"
	StateSignupPassword UserState = "signup_password"

	// Property create/edit dialog (full-record, one field per step)
	StatePropertyName         UserState = "property_name"
	StatePropertyLocation     UserState = "property_location"
	StatePropertyPrice        UserState = "property_price"
	StatePropertyAvailability UserState = "property_availability"
	StatePropertyImageURL     UserState = "property_image_url"

	// Booking request dialog
	StateBookingDate    UserState = "booking_date"
	StateBookingTime    UserState = "booking_time"
	StateBookingConfirm UserState = "booking_confirm"

	// Listings search prompt
	StateSearchQuery UserState = "search_query"
)

// UserData holds the dialog state plus the values collected so far.
type UserData struct {
	State UserState
	Data  map[string]interface{}
}
