//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"coupon-api/internal/domain/coupon"
	"coupon-api/internal/domain/user"
	"coupon-api/internal/handler/api"
	"coupon-api/internal/handler/middleware"
	"coupon-api/internal/pkg/errs"
	"coupon-api/internal/pkg/jwt"
	"coupon-api/internal/usecase"
	"coupon-api/internal/usecase/readmodel"
	"coupon-api/tests/common/builder"
	"coupon-api/tests/common/httptest"
	"coupon-api/tests/common/testutil"
	usecasemock "coupon-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	adminToken  = "admin-token"
	validList   = "/api/coupons"
	validDetail = "/api/coupons/1"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCoupons   *usecasemock.MockCouponUseCase
	mockValidator *usecasemock.MockTokenValidator
	handler       *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCoupons = usecasemock.NewMockCouponUseCase(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCoupons)

	s.mockValidator.EXPECT().ValidateToken(adminToken).
		Return("testadmin", user.RoleAdmin, nil).AnyTimes()

	authMiddleware := middleware.NewAuthMiddleware(s.mockValidator)

	// Mirrors the production route table
	s.router.GET("/api/coupons/:id", api.CouponIDFilter(), s.handler.Get)

	authRequired := s.router.Group("/api/coupons", authMiddleware.RequireAuth())
	authRequired.GET("", authMiddleware.RequireRole(user.RoleAdmin), s.handler.List)
	authRequired.POST("", s.handler.Create)
	authRequired.PUT("", s.handler.Update)
	authRequired.DELETE("/:id", api.CouponIDFilter(), s.handler.Delete)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestList() {
	s.Run("success: returns every coupon", func() {
		coupons := []readmodel.CouponRM{
			*builder.NewCouponBuilder().WithID(1).BuildReadModel(),
			*builder.NewCouponBuilder().WithID(2).WithName("WINTER").BuildReadModel(),
		}
		s.mockCoupons.EXPECT().List(gomock.Any()).Return(coupons, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validList, nil, adminToken)

		var result []readmodel.CouponRM
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, &result)
		s.Len(result, 2)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validList, nil, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusUnauthorized, "Access token required.")
	})

	s.Run("error: 401 Unauthorized for an invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("garbage").
			Return("", user.Role(""), jwt.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validList, nil, "garbage")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token.")
	})

	s.Run("error: 403 Forbidden for a non-admin role", func() {
		s.mockValidator.EXPECT().ValidateToken("viewer-token").
			Return("bob", user.Role("Viewer"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validList, nil, "viewer-token")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusForbidden, "Insufficient permissions.")
	})
}

func (s *CouponHandlerTestSuite) TestGet() {
	s.Run("success: returns the coupon", func() {
		existing := builder.NewCouponBuilder().BuildReadModel()
		s.mockCoupons.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validDetail, nil, "")

		var result readmodel.CouponRM
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, &result)
		s.Equal(existing.Name, result.Name)
	})

	s.Run("success: a missing coupon yields a null result", func() {
		s.mockCoupons.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/999", nil, "")

		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, nil)
		env := httptest.DecodeEnvelope(s.T(), rec)
		s.True(env.Result == nil || string(env.Result) == "null")
	})

	s.Run("error: 400 Bad Request for a zero id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/0", nil, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Cannot have 0 in id.")
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/abc", nil, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid coupon id.")
	})
}

func (s *CouponHandlerTestSuite) TestCreate() {
	reqBody := builder.NewCouponBuilder().BuildCreateDTO()

	s.Run("success: returns 201 Created with the stored coupon", func() {
		created := builder.NewCouponBuilder().BuildReadModel()
		s.mockCoupons.EXPECT().Create(gomock.Any(), reqBody).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, validList, reqBody, adminToken)

		var result readmodel.CouponRM
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusCreated, &result)
		s.Equal(created.ID, result.ID)
	})

	s.Run("error: 400 Bad Request reports every validation failure", func() {
		invalid := builder.NewCouponBuilder().WithName("").WithPercent(0).BuildCreateDTO()
		s.mockCoupons.EXPECT().Create(gomock.Any(), invalid).
			Return(nil, &usecase.ValidationError{Violations: []string{
				coupon.ErrNameRequired.Error(),
				coupon.ErrPercentOutOfRange.Error(),
			}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, validList, invalid, adminToken)
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest,
			coupon.ErrNameRequired.Error(), coupon.ErrPercentOutOfRange.Error())
	})

	s.Run("error: 400 Bad Request for a duplicate name", func() {
		s.mockCoupons.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, errs.ErrDuplicateCouponName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, validList, reqBody, adminToken)
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Coupon name already exists.")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, validList, reqBody, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusUnauthorized, "Access token required.")
	})
}

func (s *CouponHandlerTestSuite) TestUpdate() {
	reqBody := builder.NewCouponBuilder().BuildUpdateDTO()

	s.Run("success: returns 200 OK with the revised coupon", func() {
		updated := builder.NewCouponBuilder().BuildReadModel()
		s.mockCoupons.EXPECT().Update(gomock.Any(), reqBody).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, validList, reqBody, adminToken)

		var result readmodel.CouponRM
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, &result)
		s.Equal(updated.ID, result.ID)
	})

	s.Run("error: 404 Not Found for a missing target", func() {
		s.mockCoupons.EXPECT().Update(gomock.Any(), reqBody).
			Return(nil, errs.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, validList, reqBody, adminToken)
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusNotFound, "Coupon doesn't exist")
	})

	s.Run("error: 400 Bad Request when the id is missing from the body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("id", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, validList, body, adminToken)
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid request format.")
	})
}

func (s *CouponHandlerTestSuite) TestDelete() {
	s.Run("success: replies with a 204 envelope on HTTP 200", func() {
		s.mockCoupons.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, validDetail, nil, adminToken)
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for a missing target", func() {
		s.mockCoupons.EXPECT().Delete(gomock.Any(), int64(999)).
			Return(errs.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/coupons/999", nil, adminToken)
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusNotFound, "Coupon doesn't exist")
	})

	s.Run("error: 400 Bad Request for a zero id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/coupons/0", nil, adminToken)
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Cannot have 0 in id.")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, validDetail, nil, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusUnauthorized, "Access token required.")
	})
}
