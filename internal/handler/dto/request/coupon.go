package request

type CouponCreateRequest struct {
	Name     string `json:"name"`
	Percent  int    `json:"percent"`
	IsActive bool   `json:"isActive"`
}

type CouponUpdateRequest struct {
	ID       int64  `json:"id" binding:"required"`
	Name     string `json:"name"`
	Percent  int    `json:"percent"`
	IsActive bool   `json:"isActive"`
}
