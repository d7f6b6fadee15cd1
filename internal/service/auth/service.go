package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/attendance-backend-go/internal/domain/auth"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/attendance-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	user.CounterRepository
	auth.RefreshTokenRepository
	jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	counterRepository user.CounterRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		CounterRepository:      counterRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
	}
}

const employeeCodeCounter = "employee_code"

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	var created user.User
	var tokens auth.TokenResponse

	// Code allocation and user creation share one transaction so an email
	// collision never burns an ordinal visible to clients.
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		seq, err := a.CounterRepository.NextSequence(txCtx, employeeCodeCounter)
		if err != nil {
			return fmt.Errorf("failed to allocate employee code: %w", err)
		}

		created, err = a.UserRepository.Create(txCtx, user.User{
			ID:           id.String(),
			EmployeeCode: fmt.Sprintf("EMP%04d", seq),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         role,
			Department:   req.Department,
		})
		if err != nil {
			return err
		}

		tokens, err = a.issueTokens(txCtx, created)
		return err
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		User:          userResponse(created),
		TokenResponse: tokens,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	var tokens auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		tokens, err = a.issueTokens(txCtx, userData)
		return err
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		User:          userResponse(userData),
		TokenResponse: tokens,
	}, nil
}

// Refresh implements auth.AuthService. The presented token is revoked and
// replaced so a stolen token stops working after first use.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	storedUserID, err := a.RefreshTokenRepository.GetUserID(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if storedUserID != userID {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	var tokens auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.RefreshTokenRepository.Revoke(txCtx, refreshToken); err != nil {
			return err
		}
		a.Service.RevokeToken(refreshToken)

		tokens, err = a.issueTokens(txCtx, userData)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokens, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return err
	}
	a.Service.RevokeToken(refreshToken)

	return nil
}

// GetProfile implements auth.AuthService.
func (a *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (auth.UserResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return userResponse(userData), nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse
	var err error

	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(u.ID, u.Email, u.EmployeeCode, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.RefreshTokenRepository.Create(ctx, u.ID, tokens.RefreshToken, time.Unix(tokens.RefreshTokenExpiresIn, 0))
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return tokens, nil
}

func userResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:           u.ID,
		EmployeeCode: u.EmployeeCode,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		Department:   u.Department,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
