package usecase

import (
	"context"
	"log/slog"
	"strings"

	"coupon-api/internal/domain/coupon"
	reqdto "coupon-api/internal/handler/dto/request"
	"coupon-api/internal/infra"
	"coupon-api/internal/pkg/clock"
	"coupon-api/internal/pkg/errs"
	"coupon-api/internal/usecase/readmodel"
)

// ValidationError carries every rule violation found in an input so the
// caller can report them all at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func newValidationError(violations []error) *ValidationError {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Error())
	}
	return &ValidationError{Violations: msgs}
}

type CouponRepository interface {
	FindByID(ctx context.Context, id int64) (*readmodel.CouponRM, error)
	FindByName(ctx context.Context, name string) (*readmodel.CouponRM, error)
	FindAll(ctx context.Context) ([]readmodel.CouponRM, error)
	Create(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error)
	Update(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error)
	Delete(ctx context.Context, id int64) error
}

type CouponUseCase interface {
	Create(ctx context.Context, req reqdto.CouponCreateRequest) (*readmodel.CouponRM, error)
	Update(ctx context.Context, req reqdto.CouponUpdateRequest) (*readmodel.CouponRM, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*readmodel.CouponRM, error)
	GetByName(ctx context.Context, name string) (*readmodel.CouponRM, error)
	List(ctx context.Context) ([]readmodel.CouponRM, error)
}

type couponUseCaseImpl struct {
	couponRepo CouponRepository
	clock      clock.Clock
}

func NewCouponUseCase(couponRepo CouponRepository, clk clock.Clock) CouponUseCase {
	return &couponUseCaseImpl{
		couponRepo: couponRepo,
		clock:      clk,
	}
}

// Create validates the input, guards name uniqueness (case-insensitive)
// and persists with service-assigned timestamps. The duplicate check and
// the insert are not atomic; the unique index on LOWER(name) is the
// backstop for concurrent creates.
func (u *couponUseCaseImpl) Create(ctx context.Context, req reqdto.CouponCreateRequest) (*readmodel.CouponRM, error) {
	if violations := coupon.Validate(req.Name, req.Percent); len(violations) > 0 {
		return nil, newValidationError(violations)
	}

	existing, err := u.couponRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateCouponName
	}

	name, _ := coupon.NewName(req.Name)
	percent, _ := coupon.NewPercent(req.Percent)

	created, err := u.couponRepo.Create(ctx, coupon.NewCoupon(name, percent, req.IsActive, u.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateCouponName
		}
		return nil, err
	}

	return created, nil
}

// Update requires the target to exist and rejects a name that collides
// with a different record. lastUpdated is refreshed, created is kept.
func (u *couponUseCaseImpl) Update(ctx context.Context, req reqdto.CouponUpdateRequest) (*readmodel.CouponRM, error) {
	if violations := coupon.Validate(req.Name, req.Percent); len(violations) > 0 {
		return nil, newValidationError(violations)
	}

	current, err := u.couponRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.ErrCouponNotFound
	}

	collision, err := u.couponRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if collision != nil && collision.ID != current.ID {
		return nil, errs.ErrDuplicateCouponName
	}

	name, _ := coupon.NewName(req.Name)
	percent, _ := coupon.NewPercent(req.Percent)

	entity := toEntity(current)
	entity.Revise(name, percent, req.IsActive, u.clock.Now())

	updated, err := u.couponRepo.Update(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateCouponName
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes the record physically. No soft delete.
func (u *couponUseCaseImpl) Delete(ctx context.Context, id int64) error {
	existing, err := u.couponRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.ErrCouponNotFound
	}

	return u.couponRepo.Delete(ctx, id)
}

// GetByID is a pure read; a missing record yields a nil result, not an
// error.
func (u *couponUseCaseImpl) GetByID(ctx context.Context, id int64) (*readmodel.CouponRM, error) {
	return u.couponRepo.FindByID(ctx, id)
}

func (u *couponUseCaseImpl) GetByName(ctx context.Context, name string) (*readmodel.CouponRM, error) {
	return u.couponRepo.FindByName(ctx, name)
}

func (u *couponUseCaseImpl) List(ctx context.Context) ([]readmodel.CouponRM, error) {
	slog.Info("Getting all coupons")
	return u.couponRepo.FindAll(ctx)
}

// toEntity rebuilds the domain entity from its stored projection; the
// stored values already passed validation on the way in.
func toEntity(rm *readmodel.CouponRM) *coupon.Coupon {
	name, _ := coupon.NewName(rm.Name)
	percent, _ := coupon.NewPercent(rm.Percent)
	return coupon.Restore(rm.ID, name, percent, rm.IsActive, rm.Created, rm.LastUpdated)
}
