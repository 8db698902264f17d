package readmodel

import (
	"time"
)

type CouponRM struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Percent     int       `json:"percent"`
	IsActive    bool      `json:"isActive"`
	Created     time.Time `json:"created"`
	LastUpdated time.Time `json:"lastUpdated"`
}
