package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// SecurityQuestion is the single recovery question presented to every
// account; only the answer is stored (hashed).
const SecurityQuestion = "What is the name of your favorite primary school teacher?"

// maxUserAgentLen caps the User-Agent string stored in the login log.
const maxUserAgentLen = 500

// Error variables
var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrDisplayNameTaken = errors.New("display name already exists")
	ErrEmailTaken       = errors.New("email already exists")

	// ErrInvalidCredentials covers unknown, disabled and wrong-password
	// logins alike, so the login path does not reveal which it was.
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	ErrUserNotFound = errors.New("user not found")

	ErrAnswerMismatch = errors.New("security answer incorrect")
	ErrAnswerNotSet   = errors.New("security question not set")
)

// UserReader defines read-only operations for accounts.
type UserReader interface {
	GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
	GetConflicting(ctx context.Context, username, displayName, email string) (*models.UserDB, error)
	CheckAvailability(ctx context.Context, username, email string) (*models.Availability, error)
}

// UserWriter defines write operations for accounts.
type UserWriter interface {
	Insert(ctx context.Context, username, passwordHash, displayName, email, answerHash string) (*models.UserSummary, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	InsertLoginLog(ctx context.Context, userID int64, ipAddress, userAgent string) error
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	UpdateAnswerHash(ctx context.Context, userID int64, answerHash string) error
}

// AuthService handles registration, login and the security-question
// lifecycle.
type AuthService struct {
	reader UserReader
	writer UserWriter
	log    *zap.SugaredLogger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		log:    log,
	}
}

// Register creates a new account. A blank display name defaults to the
// username. Uniqueness is checked in priority order: username, display
// name, then non-empty email; the first collision wins the reported
// reason. Password and security answer are stored as bcrypt hashes only.
func (svc *AuthService) Register(ctx context.Context, username, password, displayName, email, answer string) (*models.UserSummary, error) {
	if displayName == "" {
		displayName = username
	}

	existing, err := svc.reader.GetConflicting(ctx, username, displayName, email)
	if err != nil {
		svc.log.Errorw("failed to check existing user", "err", err)
		return nil, err
	}
	if existing != nil {
		switch {
		case existing.Username == username:
			return nil, ErrUsernameTaken
		case existing.DisplayName == displayName:
			return nil, ErrDisplayNameTaken
		case email != "" && existing.Email != nil && *existing.Email == email:
			return nil, ErrEmailTaken
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		svc.log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	answerHash, err := bcrypt.GenerateFromPassword([]byte(answer), bcrypt.DefaultCost)
	if err != nil {
		svc.log.Errorw("failed to hash security answer", "err", err)
		return nil, err
	}

	summary, err := svc.writer.Insert(ctx, username, string(passwordHash), displayName, email, string(answerHash))
	if err != nil {
		svc.log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return summary, nil
}

// Login authenticates by username or email, stamps the last login and
// appends a login-log row in the caller's transaction. Unknown accounts,
// disabled accounts and wrong passwords are indistinguishable to the
// caller.
func (svc *AuthService) Login(ctx context.Context, identifier, password, ipAddress, userAgent string) (*models.UserDB, error) {
	user, err := svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil || user.Status != models.UserStatusActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.UserID); err != nil {
		svc.log.Errorw("failed to update last login", "err", err)
		return nil, err
	}

	if len(userAgent) > maxUserAgentLen {
		userAgent = userAgent[:maxUserAgentLen]
	}
	if err := svc.writer.InsertLoginLog(ctx, user.UserID, ipAddress, userAgent); err != nil {
		svc.log.Errorw("failed to insert login log", "err", err)
		return nil, err
	}

	return user, nil
}

// GetProfile returns the account by id, disabled accounts included.
func (svc *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CheckAvailability reports whether a username or email is taken.
func (svc *AuthService) CheckAvailability(ctx context.Context, username, email string) (*models.Availability, error) {
	av, err := svc.reader.CheckAvailability(ctx, username, email)
	if err != nil {
		svc.log.Errorw("failed to check availability", "err", err)
		return nil, err
	}
	return av, nil
}

// GetSecurityQuestion returns the active account matching the identifier;
// the question text itself is the fixed SecurityQuestion constant.
func (svc *AuthService) GetSecurityQuestion(ctx context.Context, identifier string) (*models.UserDB, error) {
	user, err := svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil || user.Status != models.UserStatusActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// VerifySecurityAnswer checks the answer against the stored hash for an
// active account.
func (svc *AuthService) VerifySecurityAnswer(ctx context.Context, userID int64, answer string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || user.Status != models.UserStatusActive {
		return ErrUserNotFound
	}
	return svc.compareAnswer(user, answer)
}

// ResetPassword verifies the security answer for the active account
// matching the identifier and overwrites the password hash.
func (svc *AuthService) ResetPassword(ctx context.Context, identifier, answer, newPassword string) error {
	user, err := svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || user.Status != models.UserStatusActive {
		return ErrUserNotFound
	}
	if err := svc.compareAnswer(user, answer); err != nil {
		return err
	}
	return svc.setPassword(ctx, user.UserID, newPassword)
}

// ChangePassword is ResetPassword keyed by account id.
func (svc *AuthService) ChangePassword(ctx context.Context, userID int64, answer, newPassword string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || user.Status != models.UserStatusActive {
		return ErrUserNotFound
	}
	if err := svc.compareAnswer(user, answer); err != nil {
		return err
	}
	return svc.setPassword(ctx, user.UserID, newPassword)
}

// ChangeSecurityAnswer verifies the old answer and overwrites the stored
// answer hash.
func (svc *AuthService) ChangeSecurityAnswer(ctx context.Context, userID int64, oldAnswer, newAnswer string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || user.Status != models.UserStatusActive {
		return ErrUserNotFound
	}
	if err := svc.compareAnswer(user, oldAnswer); err != nil {
		return err
	}

	answerHash, err := bcrypt.GenerateFromPassword([]byte(newAnswer), bcrypt.DefaultCost)
	if err != nil {
		svc.log.Errorw("failed to hash security answer", "err", err)
		return err
	}
	if err := svc.writer.UpdateAnswerHash(ctx, userID, string(answerHash)); err != nil {
		svc.log.Errorw("failed to update security answer", "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) compareAnswer(user *models.UserDB, answer string) error {
	if user.AnswerHash == "" {
		return ErrAnswerNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.AnswerHash), []byte(answer)); err != nil {
		return ErrAnswerMismatch
	}
	return nil
}

func (svc *AuthService) setPassword(ctx context.Context, userID int64, newPassword string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		svc.log.Errorw("failed to hash password", "err", err)
		return err
	}
	if err := svc.writer.UpdatePasswordHash(ctx, userID, string(passwordHash)); err != nil {
		svc.log.Errorw("failed to update password", "err", err)
		return err
	}
	return nil
}
