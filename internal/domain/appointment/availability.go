package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      string
}

// Window is one working-hour interval on a concrete date.
type Window struct {
	Start time.Time
	End   time.Time
}

// Slots walks every window from its start in steps of d and keeps the
// candidates [t, t+d) that fit the window and do not overlap an active
// appointment of barberID. Windows are neither sorted nor merged.
func Slots(windows []Window, d time.Duration, barberID uint, booked []models.Appointment) []time.Time {
	if d <= 0 {
		return nil
	}

	slots := []time.Time{}
	for _, w := range windows {
		for t := w.Start; !t.Add(d).After(w.End); t = t.Add(d) {
			if HasConflict(booked, barberID, t, t.Add(d)) {
				continue
			}
			slots = append(slots, t)
		}
	}
	return slots
}
