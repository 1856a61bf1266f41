package services

import (
	"context"
	"strings"

	"jobboard/internal/domain"
	"jobboard/internal/identity"
	"jobboard/internal/repositories"
	"jobboard/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const defaultRole = "viewer"

type UserService struct {
	users    UserStore
	verifier IdentityVerifier
}

func NewUserService(users UserStore, verifier IdentityVerifier) *UserService {
	return &UserService{users: users, verifier: verifier}
}

// ProviderLogin is the profile a trusted identity-provider gateway forwards
// on POST /api/user/auth.
type ProviderLogin struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	PhoneNumber   string `json:"phone_number"`
	Provider      string `json:"provider"`
	EmailVerified bool   `json:"email_verified"`
}

// LoginOrRegister finds the user by email or creates one on first login.
func (s *UserService) LoginOrRegister(ctx context.Context, in ProviderLogin) (domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return domain.User{}, domain.ValidationError{Field: "email", Msg: "required"}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !domain.IsNotFound(err) {
		return domain.User{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Anonymous"
	}
	provider := strings.TrimSpace(in.Provider)
	if provider == "" {
		provider = "unknown"
	}

	id, err := s.users.Create(ctx, domain.User{
		Email:         email,
		Name:          name,
		Role:          defaultRole,
		AuthProvider:  provider,
		EmailVerified: in.EmailVerified,
		Avatar:        in.Avatar,
		PhoneNumber:   in.PhoneNumber,
		OnchainStatus: domain.VerificationNotVerified,
		JobSeeker:     true,
	})
	if err != nil {
		return domain.User{}, err
	}

	utils.LogEvent("", "user", "register", "new account via "+provider)
	return s.users.GetByID(ctx, id)
}

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Register creates a local password-backed account.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return domain.User{}, domain.ValidationError{Field: "email", Msg: "must be a valid email"}
	case strings.TrimSpace(in.Name) == "":
		return domain.User{}, domain.ValidationError{Field: "name", Msg: "required"}
	case len(in.Password) < 8:
		return domain.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	id, err := s.users.Create(ctx, domain.User{
		Email:         email,
		PasswordHash:  string(hash),
		Name:          strings.TrimSpace(in.Name),
		Role:          defaultRole,
		AuthProvider:  "local",
		OnchainStatus: domain.VerificationNotVerified,
		JobSeeker:     true,
	})
	if err != nil {
		return domain.User{}, err
	}
	return s.users.GetByID(ctx, id)
}

// Login checks local credentials. Failures are reported uniformly so the
// response does not reveal whether the account exists.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.User{}, domain.UnauthorizedError{Msg: "invalid email or password"}
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, domain.UnauthorizedError{Msg: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.UnauthorizedError{Msg: "invalid email or password"}
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, patch repositories.UserPatch) (domain.User, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.User{}, domain.ValidationError{Field: "name", Msg: "cannot be empty"}
	}
	if err := s.users.UpdateProfile(ctx, userID, patch); err != nil {
		return domain.User{}, err
	}
	return s.users.GetByID(ctx, userID)
}

// ConnectWallet verifies a wallet address against the identity service and
// records the resulting status. The wallet-uniqueness precheck runs before
// the external call; the unique index on wallet_address backs up the race
// window.
func (s *UserService) ConnectWallet(ctx context.Context, userID int64, address string) (domain.VerificationStatus, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", domain.ValidationError{Field: "address", Msg: "required"}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.VerifiedOnchain {
		return user.OnchainStatus, nil
	}

	other, err := s.users.GetByWallet(ctx, address)
	if err == nil && other.ID != userID && other.VerifiedOnchain {
		return "", domain.ConflictError{Resource: "wallet", Msg: "address already connected to a verified account"}
	}
	if err != nil && !domain.IsNotFound(err) {
		return "", err
	}

	judgements, err := s.verifier.Verify(ctx, address)
	if err != nil {
		return "", err
	}

	status := identity.StatusFor(judgements)
	verified := status == domain.VerificationVerified
	if err := s.users.SetOnchain(ctx, userID, address, status, verified); err != nil {
		return "", err
	}

	utils.LogEvent("", "user", "connect_wallet", "status="+string(status))
	return status, nil
}
