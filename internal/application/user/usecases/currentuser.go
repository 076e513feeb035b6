package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CurrentUserQuery struct {
	UserID uint
}

type CurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewCurrentUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *CurrentUserUseCase {
	return &CurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, query CurrentUserQuery) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// The session outlived the account.
			return nil, errors.NewUnauthorizedError("authentication required")
		}
		uc.logger.Errorw("failed to load user", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}

	return dto.ToUserDTO(u), nil
}
