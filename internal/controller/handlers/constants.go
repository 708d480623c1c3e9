package handlers

// Validation limits for dialog input.
const (
	PropertyNameMinLength = 3
	PropertyNameMaxLength = 100

	PropertyLocationMinLength = 3
	PropertyLocationMaxLength = 200

	// Monthly rent in rupees
	PropertyMaxPrice = 10_000_000

	PasswordMinLength = 6

	// Layouts for the booking dialog inputs
	BookingDateLayout = "2006-01-02"
	BookingTimeLayout = "15:04"
)
