package components

import (
	"coupon-api/internal/pkg/clock"
	"coupon-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewCouponUseCase,
		usecase.NewTokenValidator,
	),
)
