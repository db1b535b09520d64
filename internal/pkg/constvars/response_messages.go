package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Availability messages
	GetAvailabilitySuccessMessage    = "get availability successfully"
	UpdateAvailabilitySuccessMessage = "availability updated successfully"
	CheckBookingSuccessMessage       = "booking checked successfully"
	GetOpeningsSuccessMessage        = "get openings successfully"

	// Meeting messages
	CreateMeetingSuccessMessage  = "meeting created successfully"
	GetMeetingsSuccessMessage    = "get meetings successfully"
	AcceptMeetingSuccessMessage  = "meeting accepted successfully"
	RejectMeetingSuccessMessage  = "meeting rejected successfully"
	CancelMeetingSuccessMessage  = "meeting cancelled successfully"
	ExportCalendarSuccessMessage = "calendar exported successfully"
)
