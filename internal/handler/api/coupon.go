package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "coupon-api/internal/handler/dto/request"
	resdto "coupon-api/internal/handler/dto/response"
	"coupon-api/internal/handler/httperr"
	"coupon-api/internal/pkg/errs"
	"coupon-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponUseCase usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
	}
}

// CouponIDFilter rejects a zero or malformed id before the handler
// runs. Registered as route-level middleware so the ordering relative
// to the handler is explicit.
func CouponIDFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Invalid coupon id.")
			return
		}
		if id == 0 {
			httperr.AbortWithEnvelope(c, http.StatusBadRequest, errors.New("zero coupon id"), "Cannot have 0 in id.")
			return
		}
		c.Next()
	}
}

// @Summary List coupons
// @Description List every coupon; restricted to the Admin role
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /api/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.couponUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithEnvelope(c, http.StatusInternalServerError, err, "Internal server error.")
		return
	}

	resdto.Write(c, resdto.OK(coupons))
}

// @Summary Get coupon by id
// @Description Fetch one coupon; a missing id yields a null result
// @Tags coupons
// @Produce json
// @Param id path int true "Coupon id"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /api/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Invalid coupon id.")
		return
	}

	coupon, err := h.couponUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithEnvelope(c, http.StatusInternalServerError, err, "Internal server error.")
		return
	}

	resdto.Write(c, resdto.OK(coupon))
}

// @Summary Create coupon
// @Description Create a coupon after validating name and percent
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CouponCreateRequest true "Coupon create request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /api/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CouponCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Invalid request format.")
		return
	}

	created, err := h.couponUseCase.Create(c.Request.Context(), req)
	if err != nil {
		h.abortWithCouponError(c, err)
		return
	}

	resdto.Write(c, resdto.Created(created))
}

// @Summary Update coupon
// @Description Update a coupon's name, percent and active flag by id
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CouponUpdateRequest true "Coupon update request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/coupons [put]
func (h *CouponHandler) Update(c *gin.Context) {
	var req reqdto.CouponUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Invalid request format.")
		return
	}

	updated, err := h.couponUseCase.Update(c.Request.Context(), req)
	if err != nil {
		h.abortWithCouponError(c, err)
		return
	}

	resdto.Write(c, resdto.OK(updated))
}

// @Summary Delete coupon
// @Description Physically remove a coupon by id
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param id path int true "Coupon id"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /api/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Invalid coupon id.")
		return
	}

	if err := h.couponUseCase.Delete(c.Request.Context(), id); err != nil {
		h.abortWithCouponError(c, err)
		return
	}

	resdto.Write(c, resdto.NoContent())
}

func (h *CouponHandler) abortWithCouponError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, validationErr.Violations...)
	case errs.Is(err, errs.ErrDuplicateCouponName):
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Coupon name already exists.")
	case errs.Is(err, errs.ErrCouponNotFound):
		httperr.AbortWithEnvelope(c, http.StatusNotFound, err, "Coupon doesn't exist")
	default:
		httperr.AbortWithEnvelope(c, http.StatusInternalServerError, err, "Internal server error.")
	}
}
