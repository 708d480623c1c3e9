package common

// Callback data patterns used across the bot. Prefixed entries carry an id
// after the colon, e.g. "accept:68a1f20c9b1e".
const (
	BackToMain = "back_to_main"
	Noop       = "noop"

	// Dashboard sections
	SectionListings      = "section:listings"
	SectionProperties    = "section:properties"
	SectionApplications  = "section:applications"
	SectionRequests      = "section:requests"
	SectionNotifications = "section:notifications"

	// Tenant side
	SearchPrompt   = "search_prompt"
	ClearSearch    = "clear_search"
	BookProperty   = "book:" // book:<property_id>
	ConfirmBooking = "confirm_booking"
	CancelDialog   = "cancel_dialog"
	PayBooking     = "pay:" // pay:<booking_id>

	// Landlord side
	AcceptRequest   = "accept:"      // accept:<booking_id>
	RejectRequest   = "reject:"      // reject:<booking_id>
	AddProperty     = "add_property"
	EditProperty    = "edit:"        // edit:<property_id>
	DeleteProperty  = "del:"         // del:<property_id>
	ConfirmDelete   = "confirm_del:" // confirm_del:<property_id>
	SetAvailability = "avail:"       // avail:yes | avail:no

	// Notification feed
	MarkRead = "read:" // read:<notification_id>
)

// Keys for view state cached between a render and its button presses, the
// chat equivalent of the component state a web view would hold.
const (
	KeyCatalog      = "catalog"
	KeyMyProperties = "my_properties"
	KeyBookings     = "bookings"
	KeyQuery        = "query"
)
