package analytics

import "time"

// DefaultTimezone is the reporting timezone when the caller supplies none or
// an unrecognized identifier.
const DefaultTimezone = "Asia/Dubai"

// LoadLocation resolves a timezone identifier, falling back to the default
// rather than failing the computation on malformed input. If even the default
// cannot be loaded (stripped tzdata), a fixed UTC+4 zone stands in.
func LoadLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.FixedZone(DefaultTimezone, 4*60*60)
}
