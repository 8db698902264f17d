package coupon

import (
	"time"
)

// Coupon is the managed discount entity. The id is store-assigned on
// insert and zero until then. Timestamps are owned by the service
// layer, never by the caller.
type Coupon struct {
	id          int64
	name        Name
	percent     Percent
	isActive    bool
	created     time.Time
	lastUpdated time.Time
}

func NewCoupon(name Name, percent Percent, isActive bool, now time.Time) *Coupon {
	return &Coupon{
		name:        name,
		percent:     percent,
		isActive:    isActive,
		created:     now,
		lastUpdated: now,
	}
}

// Restore rebuilds a persisted coupon from store values.
func Restore(id int64, name Name, percent Percent, isActive bool, created, lastUpdated time.Time) *Coupon {
	return &Coupon{
		id:          id,
		name:        name,
		percent:     percent,
		isActive:    isActive,
		created:     created,
		lastUpdated: lastUpdated,
	}
}

// Revise replaces the mutable fields and refreshes lastUpdated.
// isActive is a caller-controlled flag, not a lifecycle gate; inactive
// coupons stay fully readable and writable.
func (c *Coupon) Revise(name Name, percent Percent, isActive bool, now time.Time) {
	c.name = name
	c.percent = percent
	c.isActive = isActive
	c.lastUpdated = now
}

func (c *Coupon) ID() int64              { return c.id }
func (c *Coupon) Name() Name             { return c.name }
func (c *Coupon) Percent() Percent       { return c.percent }
func (c *Coupon) IsActive() bool         { return c.isActive }
func (c *Coupon) Created() time.Time     { return c.created }
func (c *Coupon) LastUpdated() time.Time { return c.lastUpdated }
