package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Overlaps is the half-open test for [s1,e1) and [s2,e2): touching ends do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// HasConflict scans every appointment of barberID, whatever its date.
func HasConflict(existing []models.Appointment, barberID uint, start, end time.Time) bool {
	for _, ap := range existing {
		if ap.BarberID != barberID || !IsActive(ap.Status) {
			continue
		}
		if Overlaps(start, end, ap.StartsAt, ap.EndsAt) {
			return true
		}
	}
	return false
}
