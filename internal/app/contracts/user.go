package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	// UpsertByEmail registers or refreshes a user keyed by email and returns
	// the stored document, role grants included.
	UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	GrantAdminByID(ctx context.Context, userID string) (matched bool, err error)
}

type UserUsecase interface {
	UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.User, error)
	FindAllUsers(ctx context.Context) ([]responses.User, error)
	IsAdmin(ctx context.Context, email string) (*responses.AdminCheck, error)
	GrantAdmin(ctx context.Context, userID string) error
}

type AuthUsecase interface {
	// IssueToken signs an access token for a known user. Unknown users are
	// rejected with a forbidden error, matching the identity gate contract.
	IssueToken(ctx context.Context, request *requests.IssueToken) (*responses.AccessToken, error)
}
