package users

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpsertUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:  request.Name,
		Email: request.Email,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	stored, err := uc.UserRepository.UpsertByEmail(ctx, user)
	if err != nil {
		return nil, err
	}

	return buildUserResponse(stored), nil
}

func (uc *userUsecase) FindAllUsers(ctx context.Context) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.User, 0, len(users))
	for i := range users {
		response = append(response, *buildUserResponse(&users[i]))
	}

	uc.Log.Info("userUsecase.FindAllUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

// IsAdmin never errors on an unknown email; a user the system has not seen is
// simply not an admin.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (*responses.AdminCheck, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &responses.AdminCheck{IsAdmin: user != nil && user.IsAdmin()}, nil
}

func (uc *userUsecase) GrantAdmin(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GrantAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	matched, err := uc.UserRepository.GrantAdminByID(ctx, userID)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", userID))
	}
	return nil
}

func buildUserResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
