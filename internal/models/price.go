package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for every price point.
const DateLayout = "2006-01-02"

// PricePoint is one simulated or real closing price.
type PricePoint struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}

func (p PricePoint) Validate() error {
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return errors.New("date must be formatted as YYYY-MM-DD")
	}
	if !p.Price.IsPositive() {
		return errors.New("price must be positive")
	}
	return nil
}
