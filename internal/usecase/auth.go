package usecase

import (
	"context"
	"log/slog"

	"coupon-api/internal/domain/user"
	reqdto "coupon-api/internal/handler/dto/request"
	"coupon-api/internal/infra"
	"coupon-api/internal/pkg/errs"
	"coupon-api/internal/pkg/jwt"
	"coupon-api/internal/pkg/password"
	"coupon-api/internal/usecase/readmodel"
)

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrDuplicateUsername  = errs.New("username already exists")
	ErrRegistrationFailed = errs.New("not valid for registration")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// LoginResult pairs the authenticated user's projection with the
// freshly minted bearer token.
type LoginResult struct {
	User  *readmodel.UserRM
	Token string
}

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error)
}

type AuthUseCase interface {
	IsUsernameUnique(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.UserRM, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// IsUsernameUnique uses an exact, case-sensitive comparison.
func (a *authUseCaseImpl) IsUsernameUnique(ctx context.Context, username string) (bool, error) {
	exists, err := a.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// Register persists a new user. The caller is expected to have checked
// IsUsernameUnique first; the unique index on username is the backstop
// for the remaining race.
func (a *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.UserRM, error) {
	username, err := user.NewUsername(req.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	if _, err = user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	passwordHash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	created, err := a.userRepo.Create(ctx, user.NewUser(username, passwordHash, req.Name))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateUsername)
		}
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	// Guard against store anomalies: a projection without a username is
	// not a registration.
	if created == nil || created.Username == "" {
		return nil, ErrRegistrationFailed
	}

	return created, nil
}

// Login authenticates the credentials and mints a token. A credential
// mismatch never reveals whether the username or the password was wrong.
func (a *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	userReadModel, passwordHash, err := a.userRepo.FindByUsername(ctx, credentials.Username().Value())
	if err != nil || userReadModel == nil {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(passwordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		slog.Warn("stored user carries an unknown role", "username", userReadModel.Username, "role", userReadModel.Role)
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(userReadModel.Username, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		User:  userReadModel,
		Token: token,
	}, nil
}
