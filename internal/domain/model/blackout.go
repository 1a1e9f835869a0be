package model

// BlackoutKind classifies provider calendar entries. Only breaks block
// bookings; other kinds are informational.
type BlackoutKind int16

const BlackoutKindBreak BlackoutKind = 2

// Blackout is a provider-declared unavailability window. Externally
// managed; read-only to this service.
type Blackout struct {
	ID         string
	ProviderID string
	Window     TimeWindow
	Kind       BlackoutKind
}
