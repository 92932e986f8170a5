package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/pgk/auth"
)

const oauthStateCookie = "lp_oauth_state"

type Service interface {
	Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError)
	Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError)
	GoogleLoginURL(state string) string
	LoginWithGoogle(ctx context.Context, code string) (string, *model.APIError)
	Logout(ctx context.Context, sid string) *model.APIError

	AuthState(ctx context.Context, sid string) *model.AuthSnapshot

	OrdersView(ctx context.Context, sid, businessID string) (*model.OrdersView, *model.APIError)
	RefreshOrders(ctx context.Context, sid, businessID string) *model.APIError
	CreateOrder(ctx context.Context, sid, businessID string, form model.CreateOrderForm) *model.APIError
	OpenCreateModal(ctx context.Context, sid string) *model.APIError
	CloseCreateModal(ctx context.Context, sid string) *model.APIError
	MarkCopied(ctx context.Context, sid, orderID string) *model.APIError
}

type Controller struct {
	service    Service
	lg         *zap.SugaredLogger
	secret     string
	sessionTTL time.Duration
}

func New(s Service, secret string, sessionTTL time.Duration, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		service:    s,
		lg:         lg,
		secret:     secret,
		sessionTTL: sessionTTL,
	}
}

// Root dispatches to the home screen or the login form.
func (c *Controller) Root(w http.ResponseWriter, r *http.Request) {
	if c.service.AuthState(r.Context(), c.cookieSID(r)).Authenticated() {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (c *Controller) LoginPage(w http.ResponseWriter, r *http.Request) {
	if c.service.AuthState(r.Context(), c.cookieSID(r)).Authenticated() {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	c.render(w, "login.html", http.StatusOK, loginData{})
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	input := model.LoginDTO{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	sid, apiErr := c.service.Login(r.Context(), input)
	if apiErr != nil {
		// re-render with the email kept so the user only retypes the password
		c.render(w, "login.html", apiErr.Code, loginData{Error: apiErr.Message, Email: input.Email})
		return
	}

	if !c.setSession(w, sid) {
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, c.service.GoogleLoginURL(state), http.StatusFound)
}

func (c *Controller) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		c.render(w, "login.html", http.StatusBadRequest, loginData{Error: "Sign-in could not be verified. Please try again."})
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		c.render(w, "login.html", http.StatusBadRequest, loginData{Error: "Google sign-in was cancelled."})
		return
	}

	sid, apiErr := c.service.LoginWithGoogle(r.Context(), code)
	if apiErr != nil {
		c.render(w, "login.html", apiErr.Code, loginData{Error: apiErr.Message})
		return
	}

	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1})
	if !c.setSession(w, sid) {
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if c.service.AuthState(r.Context(), c.cookieSID(r)).Authenticated() {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	c.render(w, "register.html", http.StatusOK, registerData{})
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	input := model.RegisterDTO{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Name:     r.PostFormValue("name"),
		LastName: r.PostFormValue("last_name"),
	}

	sid, apiErr := c.service.Register(r.Context(), input)
	if apiErr != nil {
		c.render(w, "register.html", apiErr.Code, registerData{Error: apiErr.Message, Form: input})
		return
	}

	if !c.setSession(w, sid) {
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) Home(w http.ResponseWriter, r *http.Request) {
	sid := c.sid(r)

	snap := c.service.AuthState(r.Context(), sid)
	if !snap.Authenticated() {
		c.toLogin(w, r)
		return
	}

	view, apiErr := c.service.OrdersView(r.Context(), sid, firstBusiness(snap))
	if apiErr != nil {
		c.fail(w, r, apiErr)
		return
	}

	c.render(w, "home.html", http.StatusOK, homeData{
		FullName:   profileName(snap),
		Snapshot:   snap,
		View:       view,
		NoBusiness: len(snap.Businesses) == 0,
	})
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	sid := c.sid(r)

	form := model.CreateOrderForm{
		Amount:      r.PostFormValue("amount"),
		Description: r.PostFormValue("description"),
		Email:       r.PostFormValue("email"),
		Currency:    r.PostFormValue("currency"),
	}

	snap := c.service.AuthState(r.Context(), sid)
	if apiErr := c.service.CreateOrder(r.Context(), sid, firstBusiness(snap), form); apiErr != nil {
		c.fail(w, r, apiErr)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) OpenCreateModal(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.OpenCreateModal(r.Context(), c.sid(r)); apiErr != nil {
		c.fail(w, r, apiErr)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) CloseCreateModal(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.CloseCreateModal(r.Context(), c.sid(r)); apiErr != nil {
		c.fail(w, r, apiErr)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) CopyLink(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	if apiErr := c.service.MarkCopied(r.Context(), c.sid(r), orderID); apiErr != nil {
		c.fail(w, r, apiErr)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) RefreshOrders(w http.ResponseWriter, r *http.Request) {
	sid := c.sid(r)

	snap := c.service.AuthState(r.Context(), sid)
	if apiErr := c.service.RefreshOrders(r.Context(), sid, firstBusiness(snap)); apiErr != nil {
		c.fail(w, r, apiErr)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.Logout(r.Context(), c.sid(r)); apiErr != nil {
		c.lg.Errorf("failed to log out: %s", apiErr.Message)
	}

	http.SetCookie(w, auth.ClearSessionCookie())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (c *Controller) NotFound(w http.ResponseWriter, r *http.Request) {
	c.render(w, "notfound.html", http.StatusNotFound, nil)
}
