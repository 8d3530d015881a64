package constants

// NATS Subjects
const (
	// Booking lifecycle
	SubjectBookingCreated   = "booking.created"
	SubjectBookingAccepted  = "booking.accepted"
	SubjectBookingCompleted = "booking.completed"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectReviewRecorded   = "review.recorded"

	// Fleet registry
	SubjectLocationUpdate      = "fleet.location.update"
	SubjectAmbulanceRegistered = "fleet.ambulance.registered"
	SubjectDriverStatus        = "fleet.driver.status"
)
