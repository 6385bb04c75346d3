package models

// Event payloads published to NATS. Each kind carries exactly the fields its
// consumers need; there is no catch-all notification struct.

type BookingCreatedEvent struct {
	BookingID      string `json:"booking_id"`
	CustomerName   string `json:"customer_name"`
	PickupLocation string `json:"pickup_location"`
	Destination    string `json:"destination"`
	Fare           int    `json:"fare"`
	PickupDate     string `json:"pickup_date"`
	PickupTime     string `json:"pickup_time"`
}

type BookingAcceptedEvent struct {
	BookingID     string `json:"booking_id"`
	DriverID      string `json:"driver_id"`
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
	CustomerPhone string `json:"customer_phone"`
}

type BookingCancelledEvent struct {
	BookingID string `json:"booking_id"`
	DriverID  string `json:"driver_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type BookingReopenedEvent struct {
	BookingID     string `json:"booking_id"`
	CustomerPhone string `json:"customer_phone"`
}

type RideStatusEvent struct {
	BookingID     string     `json:"booking_id"`
	CustomerPhone string     `json:"customer_phone"`
	RideStatus    RideStatus `json:"ride_status"`
	Message       string     `json:"message"`
}

type RideCompletedEvent struct {
	BookingID     string `json:"booking_id"`
	DriverID      string `json:"driver_id"`
	CustomerPhone string `json:"customer_phone"`
	Fare          int    `json:"fare"`
}

type NegotiationEvent struct {
	NegotiationID string      `json:"negotiation_id"`
	BookingID     string      `json:"booking_id"`
	DriverID      string      `json:"driver_id"`
	CustomerID    string      `json:"customer_id,omitempty"`
	Recipient     Party       `json:"recipient"`
	Type          MessageType `json:"type"`
	Price         int         `json:"price,omitempty"`
	Message       string      `json:"message,omitempty"`
}

type DriverLocationEvent struct {
	DriverID  string  `json:"driver_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash"`
}
