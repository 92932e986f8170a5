package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/internal/repository/backend"
	"github.com/linkpay/webclient/internal/repository/sessions"
)

func strptr(s string) *string { return &s }

func seedSession(t *testing.T, store *sessions.MemoryStore, sess *model.Session) string {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), sess))
	return sess.ID
}

func TestAuthStateAnonymous(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	snap := svc.AuthState(context.Background(), "")

	require.NotNil(t, snap)
	assert.False(t, snap.Authenticated())
	assert.Nil(t, snap.Profile)
}

func TestAuthStateUnknownSessionIsAnonymous(t *testing.T) {
	svc, _, _, _ := newStatefulService(t)

	snap := svc.AuthState(context.Background(), "missing")

	assert.False(t, snap.Authenticated())
}

func TestAuthStateFetchesAndCachesProfile(t *testing.T) {
	svc, mi, mb, store := newStatefulService(t)

	sid := seedSession(t, store, &model.Session{
		Identity: model.IdentitySession{UID: "uid-1", Email: "a@b.com"},
	})

	me := &model.MeResponse{
		ID:       "uid-1",
		Name:     strptr("Ada"),
		LastName: strptr("Lovelace"),
		Businesses: []model.Business{
			{ID: "biz-1", Name: "Ada's Bakery"},
		},
	}

	// one fetch only, the second AuthState call must come from the cache
	mi.EXPECT().IDToken(gomock.Any(), gomock.Any()).Return("tok", nil).Times(1)
	mb.EXPECT().Me(gomock.Any(), "tok").Return(me, nil).Times(1)

	snap := svc.AuthState(context.Background(), sid)

	assert.True(t, snap.Authenticated())
	assert.Equal(t, "a@b.com", snap.Email)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Ada Lovelace", snap.Profile.FullName())
	require.Len(t, snap.Businesses, 1)
	assert.Equal(t, "biz-1", snap.Businesses[0].ID)

	cached := svc.AuthState(context.Background(), sid)
	require.NotNil(t, cached.Profile)
	assert.Equal(t, "Ada Lovelace", cached.Profile.FullName())
}

func TestAuthStateEmptyBusinessList(t *testing.T) {
	svc, mi, mb, store := newStatefulService(t)

	sid := seedSession(t, store, &model.Session{
		Identity: model.IdentitySession{UID: "uid-1"},
	})

	mi.EXPECT().IDToken(gomock.Any(), gomock.Any()).Return("tok", nil)
	mb.EXPECT().Me(gomock.Any(), "tok").Return(&model.MeResponse{ID: "uid-1"}, nil)

	snap := svc.AuthState(context.Background(), sid)

	require.NotNil(t, snap.Businesses)
	assert.Empty(t, snap.Businesses)
}

func TestAuthStateBackendErrorSurfaced(t *testing.T) {
	svc, mi, mb, store := newStatefulService(t)

	sid := seedSession(t, store, &model.Session{
		Identity: model.IdentitySession{UID: "uid-1"},
	})

	mi.EXPECT().IDToken(gomock.Any(), gomock.Any()).Return("tok", nil).Times(1)
	mb.EXPECT().Me(gomock.Any(), "tok").Return(nil, &backend.BackendError{Status: 503}).Times(1)

	snap := svc.AuthState(context.Background(), sid)

	assert.True(t, snap.Authenticated())
	assert.Nil(t, snap.Profile)
	assert.Equal(t, "backend error 503", snap.ProfileError)

	// the error is cached too, no retry storm on every render
	again := svc.AuthState(context.Background(), sid)
	assert.Equal(t, "backend error 503", again.ProfileError)
}

func TestAuthStateTokenErrorFallbackMessage(t *testing.T) {
	svc, mi, _, store := newStatefulService(t)

	sid := seedSession(t, store, &model.Session{
		Identity: model.IdentitySession{UID: "uid-1"},
	})

	mi.EXPECT().IDToken(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	snap := svc.AuthState(context.Background(), sid)

	assert.Equal(t, model.ErrProfileFallbackMessage, snap.ProfileError)
}

// A profile fetch that was overtaken by a newer one for the same session must
// not overwrite the newer result.
func TestAuthStateStaleFetchDiscarded(t *testing.T) {
	svc, mi, mb, store := newStatefulService(t)

	sid := seedSession(t, store, &model.Session{
		Identity: model.IdentitySession{UID: "uid-1"},
	})

	slow := &model.MeResponse{ID: "uid-1", Name: strptr("Slow")}
	fast := &model.MeResponse{ID: "uid-1", Name: strptr("Fast")}

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	mi.EXPECT().IDToken(gomock.Any(), gomock.Any()).Return("tok", nil).AnyTimes()
	mb.EXPECT().Me(gomock.Any(), "tok").Times(2).DoAndReturn(
		func(context.Context, string) (*model.MeResponse, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(entered)
				<-release
				return slow, nil
			}
			return fast, nil
		})

	type result struct{ snap *model.AuthSnapshot }
	first := make(chan result)
	go func() {
		first <- result{svc.AuthState(context.Background(), sid)}
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first fetch never started")
	}

	second := svc.AuthState(context.Background(), sid)
	require.NotNil(t, second.Profile)
	assert.Equal(t, "Fast", second.Profile.Name)

	close(release)

	var got result
	select {
	case got = <-first:
	case <-time.After(time.Second):
		t.Fatal("first fetch never finished")
	}

	// the stale fetch reports loading instead of its outdated profile
	assert.Nil(t, got.snap.Profile)
	assert.True(t, got.snap.ProfileLoading)

	// and the session keeps the newer result
	final := svc.AuthState(context.Background(), sid)
	require.NotNil(t, final.Profile)
	assert.Equal(t, "Fast", final.Profile.Name)
}
