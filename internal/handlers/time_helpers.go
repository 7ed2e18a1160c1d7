package handlers

import (
	"time"

	"github.com/silverhalide/studio-api/internal/models"
)

const defaultTimezone = "UTC"

// resolve the studio's official timezone
func locationFromStudio(studio *models.Studio) *time.Location {
	if studio != nil && studio.Timezone != "" {
		if loc, err := time.LoadLocation(studio.Timezone); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

func parseDateInStudio(studio *models.Studio, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromStudio(studio),
	)
}
