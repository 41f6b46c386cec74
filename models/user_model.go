package models

import (
	"context"
	"errors"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/auth"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/types"
)

// UserModel handles registration, login and profile management.
type UserModel struct {
	store  store.UserStore
	issuer *auth.TokenIssuer
}

// NewUserModel creates a new UserModel.
func NewUserModel(userStore store.UserStore, issuer *auth.TokenIssuer) *UserModel {
	return &UserModel{
		store:  userStore,
		issuer: issuer,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (m *UserModel) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserResponse, error) {
	log := logger.GetLogger()

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Errorw("Failed to hash password", "error", err)
		return nil, apperrors.InternalServerError("Failed to process registration")
	}

	user := &types.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashed,
		Phone:          req.Phone,
		Address:        req.Address,
		IsActive:       true,
	}

	id, err := m.store.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Username or email already registered", "")
		}
		log.Errorw("Failed to create user", "username", req.Username, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	created, err := m.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	log.Infow("User registered", "userId", id, "email", logger.MaskEmail(created.Email))
	resp := created.ToResponse()
	return &resp, nil
}

// Login verifies credentials and issues an access token.
func (m *UserModel) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := m.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.AuthenticationFailed("Incorrect username or password")
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	if !auth.CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperrors.AuthenticationFailed("Incorrect username or password")
	}

	token, err := m.issuer.Issue(user.ID, user.Username)
	if err != nil {
		logger.GetLogger().Errorw("Failed to issue token", "userId", user.ID, "error", err)
		return nil, apperrors.InternalServerError("Failed to issue token")
	}

	return &types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(m.issuer.TTL().Seconds()),
	}, nil
}

// GetProfile returns the current user's own record.
func (m *UserModel) GetProfile(ctx context.Context, userID string) (*types.UserResponse, error) {
	return m.getUser(ctx, userID)
}

// GetUser returns a user by ID.
func (m *UserModel) GetUser(ctx context.Context, id string) (*types.UserResponse, error) {
	return m.getUser(ctx, id)
}

func (m *UserModel) getUser(ctx context.Context, id string) (*types.UserResponse, error) {
	user, err := m.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("User", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	resp := user.ToResponse()
	return &resp, nil
}

// UpdateProfile applies a partial update to the current user's record.
func (m *UserModel) UpdateProfile(ctx context.Context, userID string, update *types.UserUpdate) (*types.UserResponse, error) {
	user, err := m.store.UpdateUser(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, apperrors.NotFound("User", userID)
		case errors.Is(err, store.ErrDuplicate):
			return nil, apperrors.NewConflictError("Email already in use", "")
		default:
			logger.GetLogger().Errorw("Failed to update user", "userId", userID, "error", err)
			return nil, apperrors.NewDatabaseError(err)
		}
	}
	resp := user.ToResponse()
	return &resp, nil
}

// ListUsers returns a page of active users.
func (m *UserModel) ListUsers(ctx context.Context, offset, limit int) (*types.PaginatedResponse, error) {
	users, total, err := m.store.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	responses := make([]types.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	return &types.PaginatedResponse{
		Data: responses,
		Pagination: types.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}, nil
}
