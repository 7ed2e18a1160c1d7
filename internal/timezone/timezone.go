package timezone

import "time"

// Everything is stored in UTC; a studio's timezone only matters when
// interpreting date/time input and laying out day slots.
const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().UTC()
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
