package components

import (
	"coupon-api/internal/infra/repository"
	"coupon-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(usecase.CouponRepository)),
		),
	),
)
