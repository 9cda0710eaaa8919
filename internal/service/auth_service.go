package service

import (
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// ReloadConfig swaps the config after a hot reload so new tokens pick up
// rotated secrets.
func (s *AuthService) ReloadConfig(cfg *config.Config) {
	s.Cfg = cfg
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Settings = model.DefaultUserSettings()

	if user.Role == model.Instructor {
		user.Plan = "Free Instructor"
	}

	return s.UserRepo.Create(user)
}

// TokenPair is the access/refresh pair issued on login and refresh. The
// refresh token is a second JWT signed with its own secret and a longer
// expiry.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func (s *AuthService) issueTokens(user *model.User) (*TokenPair, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	refresh, err := util.GenerateJWT(user, s.Cfg.JWT.RefreshSecret, s.Cfg.JWT.RefreshExpireTime)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Token: token, RefreshToken: refresh}, nil
}

func (s *AuthService) Login(email, password string) (*TokenPair, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	s.UserRepo.UpdateLastLogin(user.ID)

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

// Refresh exchanges a valid refresh token for a new token pair. An expired
// or tampered token surfaces as a credentials failure.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, *model.User, error) {
	claims, err := util.ParseJWT(refreshToken, s.Cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
