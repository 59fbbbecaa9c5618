package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/repository"
	internalEntity "github.com/quizforge/quizforge-be/internal/entity"
)

type AuthUsecase interface {
	Register(ctx context.Context, req entity.RegisterRequest) (*entity.AuthResponse, error)
	Login(ctx context.Context, req entity.LoginRequest) (*entity.AuthResponse, error)
}

type AuthConfig struct {
	DB     *gorm.DB
	Log    *logrus.Logger
	Config *viper.Viper
	Users  repository.UserRepository
}

type authUsecase struct {
	cfg AuthConfig
}

const defaultTokenTTL = 24 * time.Hour

func NewAuthUsecase(cfg AuthConfig) AuthUsecase {
	return &authUsecase{cfg: cfg}
}

func (u *authUsecase) Register(ctx context.Context, req entity.RegisterRequest) (*entity.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := u.cfg.Users.EmailExists(u.cfg.DB, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fiber.NewError(fiber.StatusConflict, "email is already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &internalEntity.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
	}
	if err := u.cfg.Users.Create(u.cfg.DB, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u.issueToken(user)
}

func (u *authUsecase) Login(ctx context.Context, req entity.LoginRequest) (*entity.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.cfg.Users.FindByEmail(u.cfg.DB, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	return u.issueToken(user)
}

func (u *authUsecase) issueToken(user *internalEntity.User) (*entity.AuthResponse, error) {
	secret := u.cfg.Config.GetString("auth.jwt_secret")
	if secret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is not configured")
	}

	ttl := defaultTokenTTL
	if v := u.cfg.Config.GetDuration("auth.token_ttl"); v > 0 {
		ttl = v
	}

	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &entity.AuthResponse{
		Token: token,
		User: entity.UserView{
			Email:  user.Email,
			Name:   user.Name,
			Coins:  user.Coins,
			Streak: user.Streak,
		},
	}, nil
}
