// Package services holds the remote store façade over the backend's data
// and auth APIs, and the screen services composing it with the on-device
// cache.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"adjaoko/app/clients"
	"adjaoko/app/domains"
)

// ErrNotAuthenticated is returned by operations requiring a signed-in
// user.
var ErrNotAuthenticated = errors.New("not authenticated")

// RemoteStore translates domain intents into calls against the backend's
// listings and profiles collections and its identity service. Data
// operations are stateless; the auth side keeps the transient in-memory
// session the way the backend SDK would (see auth.go).
type RemoteStore struct {
	client *clients.HTTPClient
	logger *zap.Logger

	auth authState
}

// NewRemoteStore creates a remote store over the given HTTP client.
func NewRemoteStore(client *clients.HTTPClient, logger *zap.Logger) *RemoteStore {
	return &RemoteStore{
		client: client,
		logger: logger,
	}
}

// decodeListings decodes a JSON array of listings from a response body.
func decodeListings(resp *http.Response) (interface{}, error) {
	var listings []domains.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return listings, nil
}

// ListListings fetches all listings, newest first by posting timestamp.
func (s *RemoteStore) ListListings(ctx context.Context) ([]domains.Listing, error) {
	path := "/rest/v1/listings?select=*&order=dateposted.desc"
	result, err := s.client.DoRequest(ctx, http.MethodGet, path, nil, nil, decodeListings)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return result.([]domains.Listing), nil
}

// InsertListing creates a listing; the backend assigns the id. Returns the
// created record with id populated.
func (s *RemoteStore) InsertListing(ctx context.Context, listing domains.Listing) (*domains.Listing, error) {
	headers := map[string]string{"Prefer": "return=representation"}
	result, err := s.client.DoRequest(ctx, http.MethodPost, "/rest/v1/listings", headers, []domains.Listing{listing}, decodeListings)
	if err != nil {
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	created := result.([]domains.Listing)
	if len(created) == 0 {
		return nil, fmt.Errorf("no listing returned from insert")
	}
	return &created[0], nil
}

// UpdateListing applies a partial update to the listing with the given id
// and returns the updated record.
func (s *RemoteStore) UpdateListing(ctx context.Context, id string, updates map[string]interface{}) (*domains.Listing, error) {
	path := "/rest/v1/listings?id=eq." + url.QueryEscape(id)
	headers := map[string]string{"Prefer": "return=representation"}
	result, err := s.client.DoRequest(ctx, http.MethodPatch, path, headers, updates, decodeListings)
	if err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	updated := result.([]domains.Listing)
	if len(updated) == 0 {
		return nil, fmt.Errorf("listing %s not found", id)
	}
	return &updated[0], nil
}

// DeleteListing removes the listing with the given id.
func (s *RemoteStore) DeleteListing(ctx context.Context, id string) error {
	path := "/rest/v1/listings?id=eq." + url.QueryEscape(id)
	if _, err := s.client.DoRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}
