package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/pgk/auth"
	"github.com/linkpay/webclient/pgk/auth/authtest"

	service "github.com/linkpay/webclient/internal/service/mocks"
)

const testSecret = "test-secret"

func newTestController(t *testing.T) (*Controller, *service.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := service.NewMockService(ctrl)
	return New(mockSvc, testSecret, time.Hour, zap.NewNop().Sugar()), mockSvc
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func authedFormRequest(method, target string, sid string, values url.Values) *http.Request {
	req := authtest.NewRequest(method, target, &model.SessionClaims{SID: sid}, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookieValue(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

func TestController_Login_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	input := model.LoginDTO{Email: "a@b.com", Password: "secret"}

	mockSvc.EXPECT().
		Login(gomock.Any(), input).
		Return("sid-1", nil).
		Times(1)

	w := httptest.NewRecorder()
	controller.Login(w, formRequest(http.MethodPost, "/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"secret"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))

	// the cookie must verify back to the session id
	token := sessionCookieValue(t, w)
	require.NotEmpty(t, token)
	claims, err := auth.VerifySessionToken[model.SessionClaims](token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SID)
}

func TestController_Login_InvalidCredentials(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("", &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrInvalidCredentialsMessage}).
		Times(1)

	w := httptest.NewRecorder()
	controller.Login(w, formRequest(http.MethodPost, "/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"wrong"},
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrInvalidCredentialsMessage)
	// the form stays populated with the entered email
	assert.Contains(t, w.Body.String(), `value="a@b.com"`)
}

func TestController_Register_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	input := model.RegisterDTO{Email: "a@b.com", Password: "secret", Name: "Ada", LastName: "Lovelace"}

	mockSvc.EXPECT().
		Register(gomock.Any(), input).
		Return("sid-1", nil).
		Times(1)

	w := httptest.NewRecorder()
	controller.Register(w, formRequest(http.MethodPost, "/register", url.Values{
		"email":     {"a@b.com"},
		"password":  {"secret"},
		"name":      {"Ada"},
		"last_name": {"Lovelace"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	assert.NotEmpty(t, sessionCookieValue(t, w))
}

func TestController_Register_Conflict(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return("", &model.APIError{Code: http.StatusConflict, Message: "email already in use"}).
		Times(1)

	w := httptest.NewRecorder()
	controller.Register(w, formRequest(http.MethodPost, "/register", url.Values{
		"email":     {"a@b.com"},
		"password":  {"secret"},
		"name":      {"Ada"},
		"last_name": {"Lovelace"},
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
	assert.Empty(t, sessionCookieValue(t, w))
}

func TestController_Root_Dispatch(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		controller, mockSvc := newTestController(t)

		mockSvc.EXPECT().AuthState(gomock.Any(), "").Return(&model.AuthSnapshot{})

		w := httptest.NewRecorder()
		controller.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("authenticated", func(t *testing.T) {
		controller, mockSvc := newTestController(t)

		token, err := auth.GenerateSessionToken(model.SessionClaims{SID: "sid-1"}, time.Hour, testSecret)
		require.NoError(t, err)

		mockSvc.EXPECT().AuthState(gomock.Any(), "sid-1").Return(&model.AuthSnapshot{UID: "uid-1"})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(auth.SessionCookie(token, time.Hour))
		w := httptest.NewRecorder()
		controller.Root(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/home", w.Header().Get("Location"))
	})
}

func TestController_Home_RendersOrders(t *testing.T) {
	controller, mockSvc := newTestController(t)

	snap := &model.AuthSnapshot{
		UID:        "uid-1",
		Email:      "a@b.com",
		Profile:    &model.Profile{ID: "uid-1", Name: "Ada", LastName: "Lovelace"},
		Businesses: []model.Business{{ID: "biz-1", Name: "Ada's Bakery"}},
	}
	view := &model.OrdersView{
		BusinessID: "biz-1",
		Rows: []model.OrderRow{
			{
				ID:             "ord-1",
				Customer:       "customer@b.com",
				AmountDisplay:  "€25.50",
				Description:    "Invoice #1",
				Status:         "paid",
				Bucket:         model.BucketPaid,
				CreatedDisplay: "Mar 07, 2024 15:04",
				PayLink:        "https://pay.example.com/pay/ord-1",
				WhatsAppURL:    "https://wa.me/?text=hi",
			},
		},
		Currencies: model.SupportedCurrencies,
	}

	mockSvc.EXPECT().AuthState(gomock.Any(), "sid-1").Return(snap)
	mockSvc.EXPECT().OrdersView(gomock.Any(), "sid-1", "biz-1").Return(view, nil)

	w := httptest.NewRecorder()
	controller.Home(w, authtest.NewRequest(http.MethodGet, "/home", &model.SessionClaims{SID: "sid-1"}, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Welcome, Ada Lovelace")
	assert.Contains(t, body, "customer@b.com")
	assert.Contains(t, body, "badge-paid")
	assert.Contains(t, body, "/home/orders/ord-1/copy")
	assert.Contains(t, body, "https://wa.me/?text=hi")
}

// The create modal must ship its own submit gating: constraint attributes
// for the no-script path and the validity script disabling the submit
// control until amount, description and email all hold.
func TestController_Home_ModalGatesSubmit(t *testing.T) {
	controller, mockSvc := newTestController(t)

	snap := &model.AuthSnapshot{
		UID:        "uid-1",
		Businesses: []model.Business{{ID: "biz-1"}},
	}
	view := &model.OrdersView{
		BusinessID: "biz-1",
		ModalOpen:  true,
		Currencies: model.SupportedCurrencies,
	}

	mockSvc.EXPECT().AuthState(gomock.Any(), "sid-1").Return(snap)
	mockSvc.EXPECT().OrdersView(gomock.Any(), "sid-1", "biz-1").Return(view, nil)

	w := httptest.NewRecorder()
	controller.Home(w, authtest.NewRequest(http.MethodGet, "/home", &model.SessionClaims{SID: "sid-1"}, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `id="create-form"`)
	assert.Contains(t, body, `name="amount"`)
	assert.Contains(t, body, `min="0.01"`)
	assert.Contains(t, body, `required`)
	assert.Contains(t, body, "submit.disabled = !formValid()")
	assert.Contains(t, body, "amount > 0")
}

func TestController_Home_DeadSessionRedirectsToLogin(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().AuthState(gomock.Any(), "sid-gone").Return(&model.AuthSnapshot{})

	w := httptest.NewRecorder()
	controller.Home(w, authtest.NewRequest(http.MethodGet, "/home", &model.SessionClaims{SID: "sid-gone"}, nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// the dead cookie is dropped so the redirect does not loop
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestController_CreateOrder(t *testing.T) {
	controller, mockSvc := newTestController(t)

	form := model.CreateOrderForm{Amount: "25.5", Description: "Invoice #1", Email: "a@b.com", Currency: "EUR"}

	mockSvc.EXPECT().AuthState(gomock.Any(), "sid-1").
		Return(&model.AuthSnapshot{UID: "uid-1", Businesses: []model.Business{{ID: "biz-1"}}})
	mockSvc.EXPECT().CreateOrder(gomock.Any(), "sid-1", "biz-1", form).Return(nil)

	w := httptest.NewRecorder()
	controller.CreateOrder(w, authedFormRequest(http.MethodPost, "/home/orders", "sid-1", url.Values{
		"amount":      {"25.5"},
		"description": {"Invoice #1"},
		"email":       {"a@b.com"},
		"currency":    {"EUR"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
}

func TestController_CopyLink(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().MarkCopied(gomock.Any(), "sid-1", "ord-1").Return(nil)

	token, err := auth.GenerateSessionToken(model.SessionClaims{SID: "sid-1"}, time.Hour, testSecret)
	require.NoError(t, err)

	router := InitRoutes(chi.NewRouter(), controller, testSecret)

	req := httptest.NewRequest(http.MethodPost, "/home/orders/ord-1/copy", nil)
	req.AddCookie(auth.SessionCookie(token, time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
}

func TestController_Logout(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().Logout(gomock.Any(), "sid-1").Return(nil)

	w := httptest.NewRecorder()
	controller.Logout(w, authtest.NewRequest(http.MethodPost, "/logout", &model.SessionClaims{SID: "sid-1"}, nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestController_GoogleLogin(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().GoogleLoginURL(gomock.Any()).
		Return("https://idp.example.com/authorize?state=abc")

	w := httptest.NewRecorder()
	controller.GoogleLogin(w, httptest.NewRequest(http.MethodGet, "/login/google", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://idp.example.com/authorize?state=abc", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, oauthStateCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestController_GoogleCallback_Success(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().LoginWithGoogle(gomock.Any(), "code-1").Return("sid-g", nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=state-1&code=code-1", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "state-1"})
	w := httptest.NewRecorder()
	controller.GoogleCallback(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	assert.NotEmpty(t, sessionCookieValue(t, w))
}

func TestController_GoogleCallback_StateMismatch(t *testing.T) {
	controller, _ := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=evil&code=code-1", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "state-1"})
	w := httptest.NewRecorder()
	controller.GoogleCallback(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "could not be verified")
}

func TestRouter_UnauthenticatedRedirect(t *testing.T) {
	controller, _ := newTestController(t)
	router := InitRoutes(chi.NewRouter(), controller, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRouter_NotFound(t *testing.T) {
	controller, _ := newTestController(t)
	router := InitRoutes(chi.NewRouter(), controller, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
