package models

import "time"

type Customer struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`

	CreatedAt time.Time `json:"-"`
}
