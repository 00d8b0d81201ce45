package auth

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(userRepository contracts.UserRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// IssueToken signs an access token for a registered user. Registration is the
// only gate; the token carries the email claim the middlewares verify later.
func (uc *authUsecase) IssueToken(ctx context.Context, request *requests.IssueToken) (*responses.AccessToken, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.IssueToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("no user registered for %s", request.Email))
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(user.Email, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	return &responses.AccessToken{AccessToken: token}, nil
}
