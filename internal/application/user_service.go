package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
	"github.com/oksasatya/records-api/pkg/helpers"
	"github.com/oksasatya/records-api/pkg/mailer"
	"github.com/oksasatya/records-api/pkg/validation"
)

// TokenIssuer signs access tokens for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// EmailPublisher queues outgoing email.
type EmailPublisher interface {
	PublishEmail(ctx context.Context, job mailer.EmailJob) error
}

type RegisterInput struct {
	Email           string `json:"email" validate:"required"`
	Name            string `json:"name"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

var registerMessages = validation.Messages{
	"email":            "Email is required",
	"password":         "Password is required",
	"confirm_password": "Confirm Password is required",
}

// Normalize trims email and name. Passwords are taken verbatim.
func (in *RegisterInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
}

func (in *RegisterInput) Validate() error {
	errs := validation.Struct(in, registerMessages)
	if in.Password != "" && in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		errs.Add("password", "Passwords don't match")
	}
	return errs.Err()
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = validation.Messages{
	"email":    "Email is required",
	"password": "Password is required",
}

func (in *LoginInput) Normalize() { in.Email = strings.TrimSpace(in.Email) }

func (in *LoginInput) Validate() error {
	return validation.Struct(in, loginMessages).Err()
}

type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        entity.User `json:"-"`
	ExpiresAt   time.Time   `json:"-"`
}

type UserService struct {
	Repo    repository.UserRepository
	Tokens  TokenIssuer
	Mail    EmailPublisher
	AppName string
	Logger  *logrus.Logger
}

func NewUserService(repo repository.UserRepository, tokens TokenIssuer, mail EmailPublisher, appName string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Mail: mail, AppName: appName, Logger: logger}
}

// Register creates an account. A taken email is reported as a field error.
func (s *UserService) Register(ctx context.Context, in *RegisterInput) (*entity.User, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{Email: in.Email, Name: in.Name, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) && conflict.Field == "email" {
			return nil, validation.Field("email", "Email is already registered")
		}
		return nil, err
	}
	s.sendWelcome(ctx, u)
	return u, nil
}

func (s *UserService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	if err := s.Mail.PublishEmail(ctx, mailer.NewWelcomeJob(s.AppName, u.Email, u.Name)); err != nil {
		helpers.LogError(s.Logger, "publish welcome email", err, logrus.Fields{"user_id": u.ID})
	}
}

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords both return ErrInvalidCredentials after the same
// amount of hashing work.
func (s *UserService) Login(ctx context.Context, in *LoginInput) (*LoginResult, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.CompareDummy(in.Password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	tok, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: tok, User: *u, ExpiresAt: exp}, nil
}

// Me returns the account of the authenticated identity.
func (s *UserService) Me(ctx context.Context, id int64) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}
