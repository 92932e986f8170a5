package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/pgk/auth"
)

// InitRoutes mounts all application routes. Everything under /home and the
// logout action sit behind the cookie auth middleware, which redirects
// browsers without a valid session cookie to /login.
func InitRoutes(r *chi.Mux, c *Controller, sessionSecret string) *chi.Mux {
	r.Get("/", c.Root)

	r.Get("/login", c.LoginPage)
	r.Post("/login", c.Login)
	r.Get("/login/google", c.GoogleLogin)
	r.Get("/auth/callback", c.GoogleCallback)

	r.Get("/register", c.RegisterPage)
	r.Post("/register", c.Register)

	r.Group(func(gr chi.Router) {
		gr.Use(auth.CookieAuthMiddlewareInit[model.SessionClaims](sessionSecret, "/login"))

		gr.Get("/home", c.Home)
		gr.Post("/home/orders", c.CreateOrder)
		gr.Post("/home/orders/new", c.OpenCreateModal)
		gr.Post("/home/orders/cancel", c.CloseCreateModal)
		gr.Post("/home/orders/{orderID}/copy", c.CopyLink)
		gr.Post("/home/orders/refresh", c.RefreshOrders)

		gr.Post("/logout", c.Logout)
	})

	r.NotFound(c.NotFound)

	return r
}
