package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`

	CreatedAt time.Time `json:"-"`
}
