// Package identity wraps the external identity provider's REST API. The
// provider is opaque: sign-in, sign-out, token retrieval and a push-based
// token-change subscription, nothing else.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linkpay/webclient/internal/model"
)

// refresh the cached token slightly before the provider expires it
const expiryLeeway = time.Minute

// AuthError is a provider failure with a human-readable message.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

type Client struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	redirectURL string

	mu      sync.Mutex
	tokens  map[string]cachedToken // keyed by provider UID
	subs    map[int]chan model.TokenEvent
	nextSub int
}

type cachedToken struct {
	token     string
	expiresAt time.Time
}

func New(baseURL, apiKey, redirectURL string, timeout time.Duration) *Client {
	return &Client{
		client:      &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiKey:      apiKey,
		redirectURL: redirectURL,
		tokens:      make(map[string]cachedToken),
		subs:        make(map[int]chan model.TokenEvent),
	}
}

type tokenResponse struct {
	LocalID      string `json:"localId"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	IDTokenSnake string `json:"id_token"`
	RefreshToken string `json:"refreshToken"`
	RefreshSnake string `json:"refresh_token"`
	ExpiresIn    string `json:"expiresIn"`
	ExpiresSnake string `json:"expires_in"`
}

func (r tokenResponse) uid() string {
	if r.LocalID != "" {
		return r.LocalID
	}
	return r.UserID
}

func (r tokenResponse) idToken() string {
	if r.IDToken != "" {
		return r.IDToken
	}
	return r.IDTokenSnake
}

func (r tokenResponse) refreshToken() string {
	if r.RefreshToken != "" {
		return r.RefreshToken
	}
	return r.RefreshSnake
}

func (r tokenResponse) expiresIn() string {
	if r.ExpiresIn != "" {
		return r.ExpiresIn
	}
	return r.ExpiresSnake
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmail authenticates with an email/password pair.
func (c *Client) SignInWithEmail(ctx context.Context, email, password string) (*model.IdentitySession, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	tr, err := c.post(ctx, "/v1/accounts:signInWithPassword", body)
	if err != nil {
		return nil, err
	}

	return c.establish(tr, model.TokenEventSignIn)
}

// GoogleAuthURL returns the provider-hosted page starting the federated
// Google flow; the provider calls back with a code.
func (c *Client) GoogleAuthURL(state string) string {
	q := url.Values{}
	q.Set("provider_id", "google.com")
	q.Set("state", state)
	q.Set("redirect_uri", c.redirectURL)
	q.Set("key", c.apiKey)

	return fmt.Sprintf("%s/v1/oauth/authorize?%s", c.baseURL, q.Encode())
}

// ExchangeGoogleCode completes the federated flow.
func (c *Client) ExchangeGoogleCode(ctx context.Context, code string) (*model.IdentitySession, error) {
	body := map[string]any{
		"code":              code,
		"providerId":        "google.com",
		"requestUri":        c.redirectURL,
		"returnSecureToken": true,
	}

	tr, err := c.post(ctx, "/v1/accounts:signInWithIdp", body)
	if err != nil {
		return nil, err
	}

	return c.establish(tr, model.TokenEventSignIn)
}

// IDToken returns the cached bearer token for the session, fetching a fresh
// one from the provider when none is cached or the cached one is about to
// expire.
func (c *Client) IDToken(ctx context.Context, sess *model.IdentitySession) (string, error) {
	if sess == nil || sess.RefreshToken == "" {
		return "", model.ErrNoSession
	}

	c.mu.Lock()
	cached, ok := c.tokens[sess.UID]
	c.mu.Unlock()

	if ok && time.Until(cached.expiresAt) > expiryLeeway {
		return cached.token, nil
	}

	body := map[string]any{
		"grant_type":    "refresh_token",
		"refresh_token": sess.RefreshToken,
	}

	tr, err := c.post(ctx, "/v1/token", body)
	if err != nil {
		return "", err
	}

	token := tr.idToken()
	c.cache(sess.UID, token, tr.expiresIn())
	if rt := tr.refreshToken(); rt != "" {
		sess.RefreshToken = rt
	}
	c.publish(model.TokenEvent{Kind: model.TokenEventRefresh, UID: sess.UID, Token: token})

	return token, nil
}

// Revoke clears the provider session.
func (c *Client) Revoke(ctx context.Context, sess *model.IdentitySession) error {
	if sess == nil {
		return model.ErrNoSession
	}

	body := map[string]any{"refresh_token": sess.RefreshToken}
	if _, err := c.post(ctx, "/v1/accounts:revoke", body); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.tokens, sess.UID)
	c.mu.Unlock()

	c.publish(model.TokenEvent{Kind: model.TokenEventSignOut, UID: sess.UID})

	return nil
}

// Subscribe registers for token/session-change events. The returned function
// releases the subscription and must be called on every exit path.
func (c *Client) Subscribe() (<-chan model.TokenEvent, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++

	ch := make(chan model.TokenEvent, 8)
	c.subs[id] = ch

	unsubscribe := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

func (c *Client) establish(tr *tokenResponse, kind model.TokenEventKind) (*model.IdentitySession, error) {
	sess := &model.IdentitySession{
		UID:          tr.uid(),
		Email:        tr.Email,
		RefreshToken: tr.refreshToken(),
	}

	c.cache(sess.UID, tr.idToken(), tr.expiresIn())
	c.publish(model.TokenEvent{Kind: kind, UID: sess.UID, Token: tr.idToken()})

	return sess, nil
}

func (c *Client) cache(uid, token, expiresIn string) {
	if uid == "" || token == "" {
		return
	}

	expiresAt := tokenExpiry(token, expiresIn)

	c.mu.Lock()
	c.tokens[uid] = cachedToken{token: token, expiresAt: expiresAt}
	c.mu.Unlock()
}

// tokenExpiry prefers the provider-reported lifetime and falls back to the
// token's own exp claim.
func tokenExpiry(token, expiresIn string) time.Time {
	if secs, err := strconv.Atoi(expiresIn); err == nil && secs > 0 {
		return time.Now().Add(time.Duration(secs) * time.Second)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}

	return time.Now().Add(expiryLeeway)
}

func (c *Client) publish(event model.TokenEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sub := range c.subs {
		select {
		case sub <- event:
		default: // отстающий подписчик не блокирует остальных
		}
	}
}

func (c *Client) post(ctx context.Context, path string, body map[string]any) (*tokenResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s%s?key=%s", c.baseURL, path, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &AuthError{Code: "NETWORK_ERROR", Message: "identity provider unreachable"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		_ = json.Unmarshal(raw, &errResp)
		code := errResp.Error.Message
		return nil, &AuthError{Code: code, Message: humanize(code)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse identity response: %w", err)
	}

	return &tr, nil
}

func humanize(code string) string {
	switch code {
	case "INVALID_LOGIN_CREDENTIALS", "INVALID_PASSWORD", "EMAIL_NOT_FOUND":
		return model.ErrInvalidCredentialsMessage
	case "USER_DISABLED":
		return "account disabled"
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return "too many attempts, try again later"
	case "":
		return "identity provider error"
	}
	return code
}
