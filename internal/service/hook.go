package service

import (
	"context"

	"github.com/linkpay/webclient/internal/model"
)

// AuthState composes the identity session with the backend profile into one
// snapshot: anonymous, authenticated while the profile loads, authenticated
// with a profile, or authenticated with a profile error. The profile is
// fetched once per session user and cached; a fetch superseded by a newer
// one for the same session never overwrites the newer result.
func (s *Service) AuthState(ctx context.Context, sid string) *model.AuthSnapshot {
	snap := &model.AuthSnapshot{}
	if sid == "" {
		return snap
	}

	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return snap
	}

	snap.UID = sess.Identity.UID
	snap.Email = sess.Identity.Email

	if sess.ProfileUID == sess.Identity.UID && (sess.Profile != nil || sess.ProfileError != "") {
		snap.Profile = sess.Profile
		snap.Businesses = sess.Businesses
		snap.ProfileError = sess.ProfileError
		return snap
	}

	gen := s.bumpGen(s.profileGens, sid)

	profile, businesses, errMsg := s.fetchProfile(ctx, sess)

	if !s.genCurrent(s.profileGens, sid, gen) {
		// superseded, the newer fetch owns the session state
		snap.ProfileLoading = true
		return snap
	}

	sess.Profile = profile
	sess.Businesses = businesses
	sess.ProfileError = errMsg
	sess.ProfileUID = sess.Identity.UID

	if err := s.sessions.Save(ctx, sess); err != nil {
		s.lg.Errorf("failed to cache profile for session %s: %v", sid, err)
	}

	snap.Profile = profile
	snap.Businesses = businesses
	snap.ProfileError = errMsg
	return snap
}

func (s *Service) fetchProfile(ctx context.Context, sess *model.Session) (*model.Profile, []model.Business, string) {
	token, err := s.identity.IDToken(ctx, &sess.Identity)
	if err != nil {
		s.lg.Errorf("failed to get id token: %v", err)
		return nil, nil, model.ErrProfileFallbackMessage
	}

	me, err := s.backend.Me(ctx, token)
	if err != nil {
		s.lg.Errorf("failed to fetch profile: %v", err)
		// surfaced verbatim, e.g. "backend error 503"
		return nil, nil, err.Error()
	}

	profile := &model.Profile{ID: me.ID}
	if me.Name != nil {
		profile.Name = *me.Name
	}
	if me.LastName != nil {
		profile.LastName = *me.LastName
	}

	businesses := me.Businesses
	if businesses == nil {
		businesses = []model.Business{}
	}

	return profile, businesses, ""
}
