//go:build unit || e2e

package builder

import (
	"time"

	"coupon-api/internal/domain/coupon"
	reqdto "coupon-api/internal/handler/dto/request"
	"coupon-api/internal/usecase/readmodel"
)

type CouponBuilder struct {
	ID       int64
	Name     string
	Percent  int
	IsActive bool
	Now      time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:       1,
		Name:     "SAVE10",
		Percent:  10,
		IsActive: true,
		Now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

func (c *CouponBuilder) WithID(id int64) *CouponBuilder {
	c.ID = id
	return c
}

func (c *CouponBuilder) WithName(name string) *CouponBuilder {
	c.Name = name
	return c
}

func (c *CouponBuilder) WithPercent(percent int) *CouponBuilder {
	c.Percent = percent
	return c
}

func (c *CouponBuilder) AsInactive() *CouponBuilder {
	c.IsActive = false
	return c
}

func (c *CouponBuilder) BuildCreateDTO() reqdto.CouponCreateRequest {
	return reqdto.CouponCreateRequest{
		Name:     c.Name,
		Percent:  c.Percent,
		IsActive: c.IsActive,
	}
}

func (c *CouponBuilder) BuildUpdateDTO() reqdto.CouponUpdateRequest {
	return reqdto.CouponUpdateRequest{
		ID:       c.ID,
		Name:     c.Name,
		Percent:  c.Percent,
		IsActive: c.IsActive,
	}
}

func (c *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	name, err := coupon.NewName(c.Name)
	if err != nil {
		return nil, err
	}

	percent, err := coupon.NewPercent(c.Percent)
	if err != nil {
		return nil, err
	}

	return coupon.NewCoupon(name, percent, c.IsActive, c.Now), nil
}

func (c *CouponBuilder) BuildReadModel() *readmodel.CouponRM {
	return &readmodel.CouponRM{
		ID:          c.ID,
		Name:        c.Name,
		Percent:     c.Percent,
		IsActive:    c.IsActive,
		Created:     c.Now,
		LastUpdated: c.Now,
	}
}
