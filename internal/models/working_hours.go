package models

import "time"

// WorkingHour is a weekly window; Weekday is 1..7 counted from the
// configured first day of the week.
type WorkingHour struct {
	ID       uint `json:"id"`
	BarberID uint `json:"barber_id"`

	Weekday int `json:"weekday"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	CreatedAt time.Time `json:"-"`
}
