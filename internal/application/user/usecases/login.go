package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User    *dto.UserDTO
	Session *user.Session
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	authCfg     *config.AuthConfig
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	authCfg *config.AuthConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		authCfg:     authCfg,
		logger:      logger,
	}
}

// Execute verifies credentials and opens a session. The failure message is
// identical for an unknown username and a wrong password.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	uc.logger.Infow("executing login use case", "username", username)

	if username == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("login for unknown username", "username", username)
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to load user", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to verify credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("password verification failed", "username", username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	expiresAt := biztime.NowUTC().Add(time.Duration(uc.authCfg.Session.ExpDays) * 24 * time.Hour)
	session, err := user.NewSession(u.ID(), cmd.IPAddress, cmd.UserAgent, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID())

	return &LoginResult{
		User:    dto.ToUserDTO(u),
		Session: session,
	}, nil
}
