package http

import (
	"net/http"

	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/pgk/auth"
)

// sid reads the session id placed in the context by the auth middleware.
func (c *Controller) sid(r *http.Request) string {
	claims := auth.GetTokenInfo[model.SessionClaims](r)
	if claims == nil {
		return ""
	}
	return claims.SID
}

// cookieSID verifies the session cookie directly, for public routes that
// run outside the auth middleware.
func (c *Controller) cookieSID(r *http.Request) string {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil {
		return ""
	}

	claims, err := auth.VerifySessionToken[model.SessionClaims](cookie.Value, c.secret)
	if err != nil {
		return ""
	}
	return claims.SID
}

// setSession mints the signed session cookie. Reports whether the response
// is still usable.
func (c *Controller) setSession(w http.ResponseWriter, sid string) bool {
	token, err := auth.GenerateSessionToken(model.SessionClaims{SID: sid}, c.sessionTTL, c.secret)
	if err != nil {
		c.lg.Errorf("failed to sign session token: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}

	http.SetCookie(w, auth.SessionCookie(token, c.sessionTTL))
	return true
}

func (c *Controller) toLogin(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearSessionCookie())
	http.Redirect(w, r, "/login", http.StatusFound)
}

// fail turns a service error into either a fresh login round-trip or a plain
// error page.
func (c *Controller) fail(w http.ResponseWriter, r *http.Request, apiErr *model.APIError) {
	if apiErr.Code == http.StatusUnauthorized {
		c.toLogin(w, r)
		return
	}

	http.Error(w, apiErr.Message, apiErr.Code)
}

func firstBusiness(snap *model.AuthSnapshot) string {
	if len(snap.Businesses) == 0 {
		return ""
	}
	return snap.Businesses[0].ID
}

func profileName(snap *model.AuthSnapshot) string {
	if snap.Profile == nil {
		return ""
	}
	return snap.Profile.FullName()
}
