package models

// RiderStateEvent is the payload the state machine hands to the validation function.
// Any other keys of the execution state are ignored.
type RiderStateEvent struct {
	Rider *RiderPayload `json:"rider"`
}

// RiderPayload holds the rider state as read from the rider state table.
// RiderID is nil only when the key is absent (or null); an empty id is kept.
// Lat and Long arrive either as strings or as JSON numbers.
type RiderPayload struct {
	RiderID *string `json:"rider_id"`
	Lat     any     `json:"lat"`
	Long    any     `json:"long"`
}

// RiderLocationRequest is a rider position after coercion
type RiderLocationRequest struct {
	RiderID string  `json:"rider_id"`
	Lat     float64 `json:"lat"`
	Long    float64 `json:"long"`
}

// ValidationResult is returned to the state machine on a valid location
type ValidationResult struct {
	StatusCode int  `json:"statusCode"`
	Valid      bool `json:"valid"`
}
