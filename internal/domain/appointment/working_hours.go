package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Windows places each working hour on the calendar date of day, in loc,
// keeping the order of hours.
func Windows(day time.Time, hours []models.WorkingHour, loc *time.Location) ([]Window, error) {
	out := make([]Window, 0, len(hours))
	for _, wh := range hours {
		start, err := timezone.At(day, wh.StartTime, loc)
		if err != nil {
			return nil, err
		}
		end, err := timezone.At(day, wh.EndTime, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, Window{Start: start, End: end})
	}
	return out, nil
}
