package constants

// NATS Subjects
const (
	// Booking lifecycle
	SubjectBookingCreated   = "booking.created"
	SubjectBookingAccepted  = "booking.accepted"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingReopened  = "booking.reopened"

	// Ride progress
	SubjectRideStatus    = "ride.status"
	SubjectRideCompleted = "ride.completed"

	// Negotiation events
	SubjectNegotiationOffer    = "negotiation.offer"
	SubjectNegotiationAccepted = "negotiation.accepted"
	SubjectNegotiationDeclined = "negotiation.declined"

	// Location tracking
	SubjectDriverLocation = "driver.location"
)
