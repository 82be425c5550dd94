package typeforge

// Presence is the bit flag recorded per field during instance construction.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps field names to Presence flags.
type PresenceMap map[string]Presence
