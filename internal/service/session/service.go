package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/clock"
	"service-motorizado/internal/domain"
	"service-motorizado/internal/latency"
	"service-motorizado/internal/logx"
)

const minPasswordLen = 6

// Config configures token issuing.
type Config struct {
	Secret string
	TTL    time.Duration
	// AutoProvision creates a courier for unknown emails on first sign-in.
	AutoProvision bool
}

// Service is the single session provider: sign-in, sign-out, session query and availability.
type Service struct {
	couriers courierDirectory
	cfg      Config
	floor    *latency.Floor
	clock    clock.Clock
	logger   logx.Logger

	mu sync.Mutex
	// revoked maps token id to the token expiry.
	revoked map[string]time.Time
}

// NewService creates a session Service.
func NewService(couriers courierDirectory, cfg Config, floor *latency.Floor, c clock.Clock, logger logx.Logger) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session: secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("session: ttl must be positive")
	}
	if c == nil {
		c = clock.New()
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		couriers: couriers,
		cfg:      cfg,
		floor:    floor,
		clock:    c,
		logger:   logger,
		revoked:  make(map[string]time.Time),
	}, nil
}

// SignIn checks credentials and issues a signed token for the courier.
func (s *Service) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	defer s.floor.Hold(ctx, latency.OpSignIn, s.floor.Start())

	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return domain.Session{}, fmt.Errorf("sign in: %w: email must be valid", apperr.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return domain.Session{}, fmt.Errorf("sign in: %w: password must have at least %d characters",
			apperr.ErrValidation, minPasswordLen)
	}

	cred, ok := s.couriers.CredentialByEmail(email)
	switch {
	case ok:
		if subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) != 1 {
			return domain.Session{}, fmt.Errorf("sign in: %w: wrong credentials", apperr.ErrUnauthorized)
		}
	case s.cfg.AutoProvision:
		var err error
		if cred, err = s.provision(email, password); err != nil {
			return domain.Session{}, fmt.Errorf("sign in: %w", err)
		}
	default:
		return domain.Session{}, fmt.Errorf("sign in: %w: wrong credentials", apperr.ErrUnauthorized)
	}

	courier, err := s.couriers.Get(cred.CourierID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign in: %w", err)
	}
	if !courier.Active {
		return domain.Session{}, fmt.Errorf("sign in: %w: courier is inactive", apperr.ErrUnauthorized)
	}

	sess, err := s.issue(courier)
	if err != nil {
		return domain.Session{}, err
	}
	s.logger.Info("courier signed in",
		logx.Event("session_started"),
		logx.String("courier_id", courier.ID),
	)
	return sess, nil
}

// SignOut revokes the token. Signing out with an unknown or expired token fails with ErrUnauthorized.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.revoked[claims.ID] = claims.ExpiresAt.Time
	s.mu.Unlock()

	s.logger.Info("courier signed out",
		logx.Event("session_ended"),
		logx.String("courier_id", claims.Subject),
	)
	return nil
}

// Current returns the session behind the token.
func (s *Service) Current(ctx context.Context, token string) (domain.Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return domain.Session{}, err
	}
	courier, err := s.couriers.Get(claims.Subject)
	if err != nil {
		return domain.Session{}, fmt.Errorf("current session: %w: courier is gone", apperr.ErrUnauthorized)
	}
	return domain.Session{
		Token:     token,
		Courier:   courier,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Authenticate returns the courier id carried by a valid token.
func (s *Service) Authenticate(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// UpdateAvailability sets the courier's availability.
func (s *Service) UpdateAvailability(ctx context.Context, courierID string, availability domain.CourierAvailability) (domain.Courier, error) {
	defer s.floor.Hold(ctx, latency.OpStatus, s.floor.Start())

	if !availability.Valid() {
		return domain.Courier{}, fmt.Errorf("update availability: %w: unknown availability %q",
			apperr.ErrValidation, availability)
	}
	c, err := s.couriers.Update(courierID, func(c *domain.Courier) {
		c.Availability = availability
	})
	if err != nil {
		return domain.Courier{}, fmt.Errorf("update availability: %w", err)
	}
	s.logger.Info("courier availability changed",
		logx.Event("availability_changed"),
		logx.String("courier_id", courierID),
		logx.String("availability", string(availability)),
	)
	return c, nil
}

// PruneRevoked forgets revoked tokens that have expired anyway.
func (s *Service) PruneRevoked() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, exp := range s.revoked {
		if !now.Before(exp) {
			delete(s.revoked, id)
			n++
		}
	}
	return n
}

func (s *Service) issue(c domain.Courier) (domain.Session, error) {
	now := s.clock.Now().Truncate(time.Second)
	exp := now.Add(s.cfg.TTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   c.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign token: %w", err)
	}
	return domain.Session{Token: token, Courier: c, IssuedAt: now, ExpiresAt: exp}, nil
}

func (s *Service) parse(token string) (*jwt.RegisteredClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", apperr.ErrUnauthorized)
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return []byte(s.cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", apperr.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: incomplete token", apperr.ErrUnauthorized)
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", apperr.ErrUnauthorized)
	}
	return claims, nil
}

// provision creates a courier and a credential for a first-time email.
func (s *Service) provision(email, password string) (domain.Credential, error) {
	userID := "user-" + uuid.NewString()
	courier := domain.Courier{
		ID:           "motorizado-" + userID,
		UserID:       userID,
		Email:        email,
		Name:         displayName(email),
		VehicleType:  "motocicleta",
		Availability: domain.AvailabilityAvailable,
		Rating:       domain.BaselineRating,
		Active:       true,
	}
	if err := s.couriers.Put(courier); err != nil {
		return domain.Credential{}, err
	}
	cred := domain.Credential{UserID: userID, Email: email, Password: password, CourierID: courier.ID}
	if err := s.couriers.AddCredential(cred); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			// lost a race with a concurrent first sign-in
			if existing, ok := s.couriers.CredentialByEmail(email); ok &&
				subtle.ConstantTimeCompare([]byte(existing.Password), []byte(password)) == 1 {
				return existing, nil
			}
			return domain.Credential{}, fmt.Errorf("%w: wrong credentials", apperr.ErrUnauthorized)
		}
		return domain.Credential{}, err
	}
	s.logger.Info("courier provisioned",
		logx.Event("courier_provisioned"),
		logx.String("courier_id", courier.ID),
	)
	return cred, nil
}

// displayName turns the local part of an email into a capitalized name.
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	r, size := utf8.DecodeRuneInString(local)
	if r == utf8.RuneError {
		return local
	}
	return string(unicode.ToUpper(r)) + local[size:]
}
