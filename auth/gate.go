package auth

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ecoquest/models"
	"ecoquest/store"
)

// Gate resolves anonymous visitors into authenticated users or
// administrators and hands out session tokens.
type Gate struct {
	store         *store.Store
	jwt           *JWTManager
	adminUsername string
	log           *zap.Logger
	now           func() time.Time
}

// NewGate builds the session gate.
func NewGate(st *store.Store, jwtManager *JWTManager, adminUsername string, log *zap.Logger) *Gate {
	return &Gate{
		store:         st,
		jwt:           jwtManager,
		adminUsername: adminUsername,
		log:           log,
		now:           time.Now,
	}
}

// RegisterProfile is the data collected on the registration form.
type RegisterProfile struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a zero-point account and logs it in. A taken username
// is refused.
func (g *Gate) Register(profile RegisterProfile) (models.UserAccount, string, error) {
	profile.Username = strings.TrimSpace(profile.Username)
	if profile.Name == "" || profile.Username == "" || profile.Password == "" {
		return models.UserAccount{}, "", fmt.Errorf("name, username and password are required: %w", models.ErrValidation)
	}
	if profile.Username == g.adminUsername {
		return models.UserAccount{}, "", fmt.Errorf("username %q taken: %w", profile.Username, models.ErrConflict)
	}

	hash, err := HashPassword(profile.Password)
	if err != nil {
		return models.UserAccount{}, "", err
	}

	account := models.UserAccount{
		Username:     profile.Username,
		Name:         profile.Name,
		Email:        profile.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    g.now(),
	}

	if err := g.store.CreateUser(account); err != nil {
		return models.UserAccount{}, "", err
	}

	token, err := g.jwt.GenerateToken(account)
	if err != nil {
		return models.UserAccount{}, "", err
	}

	g.log.Info("user registered", zap.String("username", account.Username))
	account.PendingApprovals = []int{}
	return account, token, nil
}

// Login authenticates a username/password pair. The admin path only
// accepts the administrator account and the user path only regular
// accounts, mirroring the two login forms.
func (g *Gate) Login(username, password string, asAdmin bool) (models.UserAccount, string, error) {
	user, err := g.store.GetUser(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return models.UserAccount{}, "", models.ErrAuthentication
	}

	if asAdmin != (user.Role == models.RoleAdmin) {
		return models.UserAccount{}, "", models.ErrAuthentication
	}

	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return models.UserAccount{}, "", err
	}

	token, err := g.jwt.GenerateToken(user)
	if err != nil {
		return models.UserAccount{}, "", err
	}

	g.log.Info("login", zap.String("username", username), zap.Bool("admin", asAdmin))
	return user, token, nil
}

// Resume applies the daily carry-over rule when an existing session comes
// back: a completion date from a previous day is cleared while the
// pending-approval set is preserved.
func (g *Gate) Resume(username string) (models.UserAccount, error) {
	user, err := g.store.GetUser(username)
	if err != nil {
		return models.UserAccount{}, err
	}

	if user.LastCompletedDate != nil && !models.SameDay(*user.LastCompletedDate, g.now()) {
		if err := g.store.ClearLastCompleted(username); err != nil {
			return models.UserAccount{}, err
		}
		user.LastCompletedDate = nil
	}

	return user, nil
}
