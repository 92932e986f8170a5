package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/linkpay/webclient/internal/model"
)

// OrdersView assembles the orders screen for one business: the row list
// (fetched when the (user, business) key changed since the last render),
// the transient banner and copied indicator (expired ones are cleared), and
// the create-modal state.
func (s *Service) OrdersView(ctx context.Context, sid, businessID string) (*model.OrdersView, *model.APIError) {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrNotAuthenticatedMessage}
	}

	s.expireTransient(ctx, sess)

	view := &model.OrdersView{
		BusinessID: businessID,
		Banner:     sess.Banner,
		ModalOpen:  sess.ModalOpen,
		FormError:  sess.FormError,
		Form:       sess.Form,
		Currencies: model.SupportedCurrencies,
	}

	// no selected business: placeholder row, no query
	if businessID == "" {
		return view, nil
	}

	key := ordersKey(sess.Identity.UID, businessID)
	if sess.RowsKey != key {
		fresh, ok := s.fetchOrders(ctx, sid, key, sess, businessID)
		if ok {
			sess = fresh
		} else {
			view.Loading = true
			return view, nil
		}
	}

	view.Banner = sess.Banner
	view.Error = sess.RowsError
	view.Rows = s.rows(sess)
	return view, nil
}

// RefreshOrders forces a full re-fetch of the row list.
func (s *Service) RefreshOrders(ctx context.Context, sid, businessID string) *model.APIError {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrNotAuthenticatedMessage}
	}

	if businessID == "" {
		return nil
	}

	s.fetchOrders(ctx, sid, ordersKey(sess.Identity.UID, businessID), sess, businessID)
	return nil
}

// CreateOrder validates the form, posts the order and optimistically
// prepends the created row. Failures turn into an error banner and leave
// the modal open so entered data is not lost; validation problems re-render
// the form inline.
func (s *Service) CreateOrder(ctx context.Context, sid, businessID string, form model.CreateOrderForm) *model.APIError {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrNotAuthenticatedMessage}
	}

	sess.ModalOpen = true
	sess.Form = form
	sess.FormError = ""

	amount, parseErr := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
	if parseErr != nil {
		return s.formFailure(ctx, sess, "Enter a valid amount")
	}
	if strings.TrimSpace(form.Description) == "" {
		return s.formFailure(ctx, sess, "Enter a description")
	}

	input := model.CreateOrderDTO{
		Amount:      amount,
		Description: form.Description,
		Email:       strings.TrimSpace(form.Email),
		Currency:    form.Currency,
	}
	if msg := s.validateCreateOrder(input); msg != "" {
		return s.formFailure(ctx, sess, msg)
	}

	if sess.Identity.UID == "" || businessID == "" {
		// fails locally, no network call
		s.lg.Errorf("failed to create order: %v", model.ErrNoBusiness)
		return s.bannerFailure(ctx, sess)
	}

	token, err := s.identity.IDToken(ctx, &sess.Identity)
	if err != nil {
		s.lg.Errorf("failed to create order: %v", err)
		return s.bannerFailure(ctx, sess)
	}

	order, err := s.backend.CreateOrder(ctx, token, model.CreateOrderRequest{
		Amount:      input.Amount,
		Description: input.Description,
		Email:       input.Email,
		Currency:    input.Currency,
		BusinessID:  businessID,
	})
	if err != nil {
		s.lg.Errorf("failed to create order: %v", err)
		return s.bannerFailure(ctx, sess)
	}

	// optimistic head insert, no additional fetch
	sess.Rows = append([]model.Order{*order}, sess.Rows...)
	sess.RowsKey = ordersKey(sess.Identity.UID, businessID)
	sess.RowsError = ""
	sess.Banner = &model.Banner{
		Type:      "success",
		Message:   "Order created.",
		ExpiresAt: s.now().Add(successBannerTTL),
	}
	sess.ModalOpen = false
	sess.Form = model.CreateOrderForm{}
	sess.FormError = ""

	return s.save(ctx, sess)
}

// OpenCreateModal shows the create-order modal.
func (s *Service) OpenCreateModal(ctx context.Context, sid string) *model.APIError {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrNotAuthenticatedMessage}
	}

	sess.ModalOpen = true
	return s.save(ctx, sess)
}

// CloseCreateModal hides the modal and discards entered data.
func (s *Service) CloseCreateModal(ctx context.Context, sid string) *model.APIError {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrNotAuthenticatedMessage}
	}

	sess.ModalOpen = false
	sess.Form = model.CreateOrderForm{}
	sess.FormError = ""
	return s.save(ctx, sess)
}

// MarkCopied flags one row's payment link as copied. Only the most recently
// copied row shows the indicator; it clears on its own after 1.5s.
func (s *Service) MarkCopied(ctx context.Context, sid, orderID string) *model.APIError {
	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrNotAuthenticatedMessage}
	}

	sess.CopiedID = orderID
	sess.CopiedUntil = s.now().Add(copiedTTL)
	return s.save(ctx, sess)
}

// fetchOrders runs a generation-guarded fetch: when a newer fetch for the
// same session started meanwhile, the result is discarded instead of
// overwriting newer rows.
func (s *Service) fetchOrders(ctx context.Context, sid, key string, sess *model.Session, businessID string) (*model.Session, bool) {
	gen := s.bumpGen(s.ordersGens, sid)

	orders, errMsg := s.loadOrders(ctx, sess, businessID)

	if !s.genCurrent(s.ordersGens, sid, gen) {
		return nil, false
	}

	fresh, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, false
	}

	// the token mint may have rotated the refresh token on sess; the
	// re-read copy must not resurrect the invalidated one
	fresh.Identity.RefreshToken = sess.Identity.RefreshToken

	fresh.RowsKey = key
	if errMsg != "" {
		fresh.RowsError = errMsg
	} else {
		fresh.Rows = orders
		fresh.RowsError = ""
	}

	if err := s.sessions.Save(ctx, fresh); err != nil {
		s.lg.Errorf("failed to store rows for session %s: %v", sid, err)
	}

	return fresh, true
}

func (s *Service) loadOrders(ctx context.Context, sess *model.Session, businessID string) ([]model.Order, string) {
	token, err := s.identity.IDToken(ctx, &sess.Identity)
	if err != nil {
		s.lg.Errorf("failed to fetch orders: %v", err)
		return nil, model.ErrLoadOrdersFailedMessage
	}

	orders, err := s.backend.Orders(ctx, token, businessID)
	if err != nil {
		s.lg.Errorf("failed to fetch orders: %v", err)
		return nil, model.ErrLoadOrdersFailedMessage
	}

	return orders, ""
}

func (s *Service) expireTransient(ctx context.Context, sess *model.Session) {
	now := s.now()
	changed := false

	if sess.Banner != nil && !now.Before(sess.Banner.ExpiresAt) {
		sess.Banner = nil
		changed = true
	}
	if sess.CopiedID != "" && !now.Before(sess.CopiedUntil) {
		sess.CopiedID = ""
		changed = true
	}

	if changed {
		if err := s.sessions.Save(ctx, sess); err != nil {
			s.lg.Errorf("failed to store session %s: %v", sess.ID, err)
		}
	}
}

func (s *Service) formFailure(ctx context.Context, sess *model.Session, msg string) *model.APIError {
	sess.FormError = msg
	return s.save(ctx, sess)
}

func (s *Service) bannerFailure(ctx context.Context, sess *model.Session) *model.APIError {
	sess.Banner = &model.Banner{
		Type:      "error",
		Message:   model.ErrCreateOrderFailedMessage,
		ExpiresAt: s.now().Add(errorBannerTTL),
	}
	return s.save(ctx, sess)
}

func (s *Service) save(ctx context.Context, sess *model.Session) *model.APIError {
	if err := s.sessions.Save(ctx, sess); err != nil {
		return &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrInternalServerMessage}
	}
	return nil
}

func ordersKey(uid, businessID string) string {
	return uid + "|" + businessID
}
