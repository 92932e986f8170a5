package service

import (
	"context"

	"github.com/linkpay/webclient/internal/model"
)

// Watch consumes the identity provider's token-change stream until ctx is
// done. The subscription is released on every exit path.
func (s *Service) Watch(ctx context.Context) {
	events, unsubscribe := s.identity.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			switch event.Kind {
			case model.TokenEventSignIn:
				s.lg.Infof("identity sign-in for user %s", event.UID)
			case model.TokenEventRefresh:
				s.lg.Debugf("identity token refreshed for user %s", event.UID)
			case model.TokenEventSignOut:
				s.lg.Infof("identity sign-out for user %s", event.UID)
			}
		}
	}
}
