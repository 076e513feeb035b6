package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 6

type RegisterCommand struct {
	Username  string
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type RegisterResult struct {
	User    *dto.UserDTO
	Session *user.Session
}

type RegisterUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	authCfg     *config.AuthConfig
	logger      logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	authCfg *config.AuthConfig,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		authCfg:     authCfg,
		logger:      logger,
	}
}

// Execute creates the account and logs the new user in. The admin role is
// granted when the email is on the configured allow-list, never through
// request data.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	username := strings.TrimSpace(cmd.Username)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	if taken, err := uc.userRepo.ExistsByUsername(ctx, username); err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, errors.NewInternalError("failed to check username availability")
	} else if taken {
		return nil, errors.NewConflictError("username already exists")
	}

	if taken, err := uc.userRepo.ExistsByEmail(ctx, email); err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to check email availability")
	} else if taken {
		return nil, errors.NewConflictError("email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	role := authorization.RoleUser
	if uc.authCfg.IsAdminEmail(email) {
		role = authorization.RoleAdmin
	}

	newUser, err := user.NewUser(username, email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	session, err := uc.createSession(ctx, newUser.ID(), cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "role", role.String())

	return &RegisterResult{
		User:    dto.ToUserDTO(newUser),
		Session: session,
	}, nil
}

func (uc *RegisterUseCase) createSession(ctx context.Context, userID uint, ip, userAgent string) (*user.Session, error) {
	expiresAt := biztime.NowUTC().Add(time.Duration(uc.authCfg.Session.ExpDays) * 24 * time.Hour)
	session, err := user.NewSession(userID, ip, userAgent, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to create session", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}
	return session, nil
}
