package models

// MaxLanes caps how many parallel lanes a single person may grow to.
const MaxLanes = 10

// DefaultLane is the lane tried first when a drop carries no lane hint.
const DefaultLane = 0

// FallbackCategory is the category every color map must contain.
const FallbackCategory = "Other"

// FallbackColor is the bar color used when no category color is known.
const FallbackColor = "#94a3b8"

// Allocation status values as stored in the allocations table.
const (
	StatusPending  = "pending"
	StatusAssigned = "assigned"
)
