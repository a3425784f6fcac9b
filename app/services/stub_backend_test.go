package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"adjaoko/app/clients"
	"adjaoko/app/domains"
)

// stubBackend fakes the managed backend: the two data collections plus the
// identity endpoints, enough to exercise the remote store end to end.
type stubBackend struct {
	mu       sync.Mutex
	listings []domains.Listing
	profiles []domains.UserProfile
	users    map[string]*stubUser
	tokenTTL time.Duration
	srv      *httptest.Server
}

type stubUser struct {
	ID       string
	Email    string
	Password string
	Name     string
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()

	b := &stubBackend{
		users:    make(map[string]*stubUser),
		tokenTTL: time.Hour,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/rest/v1/listings", b.handleListings)
	mux.HandleFunc("/rest/v1/profiles", b.handleProfiles)
	mux.HandleFunc("/auth/v1/signup", b.handleSignUp)
	mux.HandleFunc("/auth/v1/token", b.handleToken)
	mux.HandleFunc("/auth/v1/logout", b.handleLogout)
	mux.HandleFunc("/auth/v1/user", b.handleUser)
	mux.HandleFunc("/auth/v1/recover", b.handleRecover)

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func newTestRemote(t *testing.T, b *stubBackend) *RemoteStore {
	t.Helper()

	client := clients.NewHTTPClient(b.srv.URL, "anon-key")
	return NewRemoteStore(client, zap.NewNop())
}

func (b *stubBackend) signToken(u *stubUser) string {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   time.Now().Add(b.tokenTTL).Unix(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("stub-secret"))
	return token
}

func idFromQuery(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Query().Get("id"), "eq.")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *stubBackend) handleListings(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		out := make([]domains.Listing, len(b.listings))
		copy(out, b.listings)
		sort.Slice(out, func(i, j int) bool { return out[i].DatePosted > out[j].DatePosted })
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var incoming []domains.Listing
		if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad body"})
			return
		}
		created := make([]domains.Listing, 0, len(incoming))
		for _, l := range incoming {
			l.ID = uuid.NewString()
			b.listings = append(b.listings, l)
			created = append(created, l)
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPatch:
		id := idFromQuery(r)
		var updates map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&updates)
		for i := range b.listings {
			if b.listings[i].ID == id {
				if v, ok := updates["status"].(string); ok {
					b.listings[i].Status = v
				}
				if v, ok := updates["price"].(string); ok {
					b.listings[i].Price = v
				}
				writeJSON(w, http.StatusOK, []domains.Listing{b.listings[i]})
				return
			}
		}
		writeJSON(w, http.StatusOK, []domains.Listing{})

	case http.MethodDelete:
		id := idFromQuery(r)
		kept := b.listings[:0]
		for _, l := range b.listings {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		b.listings = kept
		w.WriteHeader(http.StatusNoContent)
	}
}

func (b *stubBackend) handleProfiles(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, b.profiles)

	case http.MethodPost:
		var incoming []domains.UserProfile
		if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad body"})
			return
		}
		saved := make([]domains.UserProfile, 0, len(incoming))
		for _, p := range incoming {
			replaced := false
			for i := range b.profiles {
				if b.profiles[i].ID == p.ID && p.ID != "" {
					b.profiles[i] = p
					replaced = true
					break
				}
			}
			if !replaced {
				if p.ID == "" {
					p.ID = uuid.NewString()
				}
				b.profiles = append(b.profiles, p)
			}
			saved = append(saved, p)
		}
		writeJSON(w, http.StatusCreated, saved)

	case http.MethodPatch:
		id := idFromQuery(r)
		var p domains.UserProfile
		_ = json.NewDecoder(r.Body).Decode(&p)
		for i := range b.profiles {
			if b.profiles[i].ID == id {
				p.ID = id
				b.profiles[i] = p
				writeJSON(w, http.StatusOK, []domains.UserProfile{p})
				return
			}
		}
		writeJSON(w, http.StatusOK, []domains.UserProfile{})
	}
}

func (b *stubBackend) handleSignUp(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Data     struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid signup"})
		return
	}
	if _, exists := b.users[req.Email]; exists {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "user already registered"})
		return
	}

	u := &stubUser{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Data.Name,
	}
	b.users[req.Email] = u

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":            u.ID,
		"email":         u.Email,
		"user_metadata": map[string]string{"name": u.Name},
	})
}

func (b *stubBackend) handleToken(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	u, ok := b.users[req.Email]
	if !ok || u.Password != req.Password {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid login credentials"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  b.signToken(u),
		"token_type":    "bearer",
		"expires_in":    int64(b.tokenTTL.Seconds()),
		"refresh_token": uuid.NewString(),
		"user": map[string]interface{}{
			"id":            u.ID,
			"email":         u.Email,
			"user_metadata": map[string]string{"name": u.Name},
		},
	})
}

func (b *stubBackend) handleLogout(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (b *stubBackend) handleUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}

	sub, _ := claims["sub"].(string)
	for _, u := range b.users {
		if u.ID == sub {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"id":            u.ID,
				"email":         u.Email,
				"user_metadata": map[string]string{"name": u.Name},
			})
			return
		}
	}
	writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "user not found"})
}

func (b *stubBackend) handleRecover(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{})
}
