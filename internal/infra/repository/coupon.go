package repository

import (
	"context"

	"coupon-api/internal/domain/coupon"
	"coupon-api/internal/infra"
	"coupon-api/internal/pkg/pgconv"
	"coupon-api/internal/usecase"
	"coupon-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type couponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) usecase.CouponRepository {
	return &couponRepository{pool: pool}
}

func (r *couponRepository) FindByID(ctx context.Context, id int64) (*readmodel.CouponRM, error) {
	const query = `
		SELECT id, name, percent, is_active, created, last_updated
		FROM coupons
		WHERE id = $1`

	rm, err := scanCoupon(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find coupon by id", err)
	}

	return rm, nil
}

// FindByName matches case-insensitively; coupon names are unique
// ignoring case.
func (r *couponRepository) FindByName(ctx context.Context, name string) (*readmodel.CouponRM, error) {
	const query = `
		SELECT id, name, percent, is_active, created, last_updated
		FROM coupons
		WHERE LOWER(name) = LOWER($1)`

	rm, err := scanCoupon(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find coupon by name", err)
	}

	return rm, nil
}

func (r *couponRepository) FindAll(ctx context.Context) ([]readmodel.CouponRM, error) {
	const query = `
		SELECT id, name, percent, is_active, created, last_updated
		FROM coupons
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	coupons := make([]readmodel.CouponRM, 0)
	for rows.Next() {
		rm, err := scanCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		coupons = append(coupons, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}

	return coupons, nil
}

func (r *couponRepository) Create(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error) {
	const query = `
		INSERT INTO coupons (name, percent, is_active, created, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, percent, is_active, created, last_updated`

	rm, err := scanCoupon(r.pool.QueryRow(ctx, query,
		c.Name().Value(),
		c.Percent().Value(),
		c.IsActive(),
		c.Created(),
		c.LastUpdated(),
	))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("coupon name already taken", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}

	return rm, nil
}

func (r *couponRepository) Update(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error) {
	const query = `
		UPDATE coupons
		SET name = $2, percent = $3, is_active = $4, last_updated = $5
		WHERE id = $1
		RETURNING id, name, percent, is_active, created, last_updated`

	rm, err := scanCoupon(r.pool.QueryRow(ctx, query,
		c.ID(),
		c.Name().Value(),
		c.Percent().Value(),
		c.IsActive(),
		c.LastUpdated(),
	))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("coupon name already taken", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update coupon", err)
	}

	return rm, nil
}

func (r *couponRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM coupons WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (*readmodel.CouponRM, error) {
	var rm readmodel.CouponRM
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Percent,
		&rm.IsActive,
		&rm.Created,
		&rm.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
