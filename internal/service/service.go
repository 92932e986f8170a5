package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/internal/repository/backend"
	"go.uber.org/zap"
)

type IdentityRepo interface {
	SignInWithEmail(ctx context.Context, email, password string) (*model.IdentitySession, error)
	GoogleAuthURL(state string) string
	ExchangeGoogleCode(ctx context.Context, code string) (*model.IdentitySession, error)
	IDToken(ctx context.Context, sess *model.IdentitySession) (string, error)
	Revoke(ctx context.Context, sess *model.IdentitySession) error
	Subscribe() (<-chan model.TokenEvent, func())
}

type BackendRepo interface {
	Me(ctx context.Context, token string) (*model.MeResponse, error)
	CreateAccount(ctx context.Context, input model.RegisterDTO) error
	Orders(ctx context.Context, token, businessID string) ([]model.Order, error)
	CreateOrder(ctx context.Context, token string, input model.CreateOrderRequest) (*model.Order, error)
}

type SessionsRepo interface {
	Create(ctx context.Context, sess *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, id string) error
}

const (
	successBannerTTL = 3 * time.Second
	errorBannerTTL   = 4 * time.Second
	copiedTTL        = 1500 * time.Millisecond
)

type Service struct {
	identity IdentityRepo
	backend  BackendRepo
	sessions SessionsRepo

	lg       *zap.SugaredLogger
	origin   string
	validate *validator.Validate
	now      func() time.Time

	// per-session fetch generations: a newer fetch for the same session
	// invalidates results of fetches still in flight
	mu          sync.Mutex
	profileGens map[string]int
	ordersGens  map[string]int
}

func New(i IdentityRepo, b BackendRepo, s SessionsRepo, origin string, lg *zap.SugaredLogger) *Service {
	return &Service{
		identity: i,
		backend:  b,
		sessions: s,

		lg:       lg,
		origin:   origin,
		validate: validator.New(),
		now:      time.Now,

		profileGens: make(map[string]int),
		ordersGens:  make(map[string]int),
	}
}

// Login authenticates against the identity provider and opens a server-side
// session. Returns the session id for the cookie.
func (s *Service) Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError) {
	if msg := s.validateLogin(input); msg != "" {
		return "", &model.APIError{Code: http.StatusBadRequest, Message: msg}
	}

	idSess, err := s.identity.SignInWithEmail(ctx, input.Email, input.Password)
	if err != nil {
		return "", &model.APIError{Code: http.StatusUnauthorized, Message: err.Error()}
	}

	return s.openSession(ctx, idSess)
}

// GoogleLoginURL starts the federated flow.
func (s *Service) GoogleLoginURL(state string) string {
	return s.identity.GoogleAuthURL(state)
}

// LoginWithGoogle completes the federated flow for the provider callback.
func (s *Service) LoginWithGoogle(ctx context.Context, code string) (string, *model.APIError) {
	idSess, err := s.identity.ExchangeGoogleCode(ctx, code)
	if err != nil {
		return "", &model.APIError{Code: http.StatusUnauthorized, Message: err.Error()}
	}

	return s.openSession(ctx, idSess)
}

// Register creates the backend account first and signs in only after the
// backend confirmed the record. A user must never end up signed in without
// a backend record, so a failed create aborts before any sign-in attempt.
func (s *Service) Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError) {
	if msg := s.validateRegister(input); msg != "" {
		return "", &model.APIError{Code: http.StatusBadRequest, Message: msg}
	}

	if err := s.backend.CreateAccount(ctx, input); err != nil {
		code := http.StatusBadGateway
		var backendErr *backend.BackendError
		if errors.As(err, &backendErr) {
			code = backendErr.Status
		}
		return "", &model.APIError{Code: code, Message: err.Error()}
	}

	idSess, err := s.identity.SignInWithEmail(ctx, input.Email, input.Password)
	if err != nil {
		return "", &model.APIError{Code: http.StatusUnauthorized, Message: err.Error()}
	}

	return s.openSession(ctx, idSess)
}

// Logout revokes the provider session and drops the server-side one.
func (s *Service) Logout(ctx context.Context, sid string) *model.APIError {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil // already gone
	}

	if err := s.identity.Revoke(ctx, &sess.Identity); err != nil {
		// sign-out proceeds anyway, the server-side session is dropped
		s.lg.Errorf("failed to revoke identity session: %v", err)
	}

	if err := s.sessions.Delete(ctx, sid); err != nil {
		return &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}
	}

	return nil
}

func (s *Service) openSession(ctx context.Context, idSess *model.IdentitySession) (string, *model.APIError) {
	sess := &model.Session{Identity: *idSess}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}
	}

	return sess.ID, nil
}

func (s *Service) bumpGen(gens map[string]int, sid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	gens[sid]++
	return gens[sid]
}

func (s *Service) genCurrent(gens map[string]int, sid string, gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return gens[sid] == gen
}
