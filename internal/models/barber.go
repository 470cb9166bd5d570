package models

import "time"

const DefaultBarberColor = "#777777"

type Barber struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	ColorHex string `json:"color_hex"`

	CreatedAt time.Time `json:"-"`
}
