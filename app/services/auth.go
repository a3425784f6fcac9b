package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"adjaoko/app/domains"
	"adjaoko/app/session"
)

// AuthSubscriber receives auth change notifications: the event kind and
// the new session (nil when the session was cleared).
type AuthSubscriber func(event string, sess *domains.Session)

// authState is the transient in-memory session reference the auth side of
// the remote store keeps, mirroring what the backend SDK would hold on
// device. It is reset on sign-out and on token expiry.
type authState struct {
	mu          sync.RWMutex
	session     *domains.Session
	subscribers []AuthSubscriber
}

// OnAuthChange registers a subscriber for auth change notifications.
// Subscribers are invoked synchronously, in registration order.
func (s *RemoteStore) OnAuthChange(fn AuthSubscriber) {
	s.auth.mu.Lock()
	defer s.auth.mu.Unlock()

	s.auth.subscribers = append(s.auth.subscribers, fn)
}

func (s *RemoteStore) notifyAuthChange(event string, sess *domains.Session) {
	s.auth.mu.RLock()
	subscribers := make([]AuthSubscriber, len(s.auth.subscribers))
	copy(subscribers, s.auth.subscribers)
	s.auth.mu.RUnlock()

	for _, fn := range subscribers {
		fn(event, sess)
	}
}

func (s *RemoteStore) setSession(sess *domains.Session) {
	s.auth.mu.Lock()
	s.auth.session = sess
	s.auth.mu.Unlock()

	if sess != nil {
		s.client.SetBearerToken(sess.AccessToken)
		return
	}
	s.client.SetBearerToken("")
}

func (s *RemoteStore) currentSession() *domains.Session {
	s.auth.mu.RLock()
	defer s.auth.mu.RUnlock()

	return s.auth.session
}

// signUpResponse covers both shapes the identity service returns from
// signup: a bare user record when email confirmation is pending, or a full
// session when auto-confirm is on.
type signUpResponse struct {
	domains.Session
	domains.User
}

// SignUp registers a new identity with name attached as profile metadata.
func (s *RemoteStore) SignUp(ctx context.Context, email, password, name string) (*domains.User, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
		"data": map[string]interface{}{
			"name": name,
		},
	}

	result, err := s.client.DoRequest(ctx, http.MethodPost, "/auth/v1/signup", nil, payload, func(resp *http.Response) (interface{}, error) {
		var out signUpResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}

	out := result.(*signUpResponse)
	if out.Session.User != nil {
		return out.Session.User, nil
	}
	if out.User.ID != "" {
		user := out.User
		return &user, nil
	}
	return nil, fmt.Errorf("no user data returned from signup")
}

// SignIn exchanges credentials for a session. On success the session
// becomes the active one and subscribers are notified.
func (s *RemoteStore) SignIn(ctx context.Context, email, password string) (*domains.User, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	result, err := s.client.DoRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", nil, payload, func(resp *http.Response) (interface{}, error) {
		var sess domains.Session
		if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &sess, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	sess := result.(*domains.Session)
	if sess.AccessToken == "" || sess.User == nil {
		return nil, fmt.Errorf("no session returned from sign in")
	}

	s.setSession(sess)
	s.notifyAuthChange(domains.AuthEventSignedIn, sess)
	return sess.User, nil
}

// SignOut invalidates the current session. The local session is cleared
// and subscribers notified even when the remote call fails.
func (s *RemoteStore) SignOut(ctx context.Context) error {
	_, err := s.client.DoRequest(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, nil)

	s.setSession(nil)
	s.notifyAuthChange(domains.AuthEventSignedOut, nil)

	if err != nil {
		s.logger.Error("remote sign out failed", zap.Error(err))
		return fmt.Errorf("sign out failed: %w", err)
	}
	return nil
}

// GetCurrentUser reads the active identity from the backend.
func (s *RemoteStore) GetCurrentUser(ctx context.Context) (*domains.User, error) {
	result, err := s.client.DoRequest(ctx, http.MethodGet, "/auth/v1/user", nil, nil, func(resp *http.Response) (interface{}, error) {
		var user domains.User
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &user, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return result.(*domains.User), nil
}

// GetSession returns the active session, or nil when there is none. An
// expired access token counts as no session and clears the stored one.
func (s *RemoteStore) GetSession(_ context.Context) (*domains.Session, error) {
	sess := s.currentSession()
	if sess == nil {
		return nil, nil
	}

	claims, err := session.ParseAccessToken(sess.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if claims.Expired(time.Now()) {
		s.setSession(nil)
		return nil, nil
	}
	return sess, nil
}

// ResetPasswordForEmail asks the identity service to send a password
// recovery email.
func (s *RemoteStore) ResetPasswordForEmail(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	if _, err := s.client.DoRequest(ctx, http.MethodPost, "/auth/v1/recover", nil, payload, nil); err != nil {
		return fmt.Errorf("failed to request password recovery: %w", err)
	}
	return nil
}
