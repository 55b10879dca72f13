package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/user"
	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
)

// AuthService owns registration, login and session verification. The
// session is a signed stateless token carried in the auth cookie;
// VerifyToken is a pure function of the token string.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*types.User, string, error)
	Login(ctx context.Context, email, password string) (*types.User, string, error)
	VerifyToken(token string) (types.Identity, error)
	SessionTTL() time.Duration
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type authService struct {
	db         *gorm.DB
	log        *logger.Logger
	userRepo   user.UserRepo
	secretKey  string
	sessionTTL time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo user.UserRepo,
	secretKey string,
	sessionTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:         db,
		log:        serviceLog,
		userRepo:   userRepo,
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
	}
}

func (as *authService) Register(ctx context.Context, name, email, password string) (*types.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	created := &types.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, cerr := as.userRepo.Create(ctx, tx, created)
		return cerr
	}); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := as.signToken(created)
	if err != nil {
		return nil, "", err
	}
	as.log.Info("User registered", "user_id", created.ID, "email", created.Email)
	return created, token, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*types.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	found, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", fmt.Errorf("load user: %w", err)
	}
	if found == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.signToken(found)
	if err != nil {
		return nil, "", err
	}
	return found, token, nil
}

func (as *authService) VerifyToken(token string) (types.Identity, error) {
	if token == "" {
		return types.Identity{}, ErrInvalidSession
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(as.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return types.Identity{}, ErrInvalidSession
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return types.Identity{}, ErrInvalidSession
	}
	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return types.Identity{}, ErrInvalidSession
	}
	return types.Identity{
		SubjectID: subjectID,
		Email:     claims.Email,
		Name:      claims.Name,
	}, nil
}

func (as *authService) SessionTTL() time.Duration {
	return as.sessionTTL
}

func (as *authService) signToken(u *types.User) (string, error) {
	claims := sessionClaims{
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}
