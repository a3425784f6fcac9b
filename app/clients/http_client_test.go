package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoRequestSendsStandardHeaders(t *testing.T) {
	var gotAPIKey, gotAuth, gotPrefer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPrefer = r.Header.Get("Prefer")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "anon-key")
	headers := map[string]string{"Prefer": "return=representation"}
	_, err := client.DoRequest(context.Background(), http.MethodGet, "/rest/v1/listings", headers, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer anon-key", gotAuth)
	assert.Equal(t, "return=representation", gotPrefer)
}

func TestDoRequestBearerSwitch(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "anon-key")
	client.SetBearerToken("user-token")
	_, err := client.DoRequest(context.Background(), http.MethodGet, "/", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer user-token", gotAuth)

	// Clearing the token falls back to the anon key.
	client.SetBearerToken("")
	_, err = client.DoRequest(context.Background(), http.MethodGet, "/", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer anon-key", gotAuth)
}

func TestDoRequestDecodesViaHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"42"}`)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "anon-key")
	result, err := client.DoRequest(context.Background(), http.MethodPost, "/", nil, map[string]string{"a": "b"}, func(resp *http.Response) (interface{}, error) {
		var out struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, err
		}
		return out.ID, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "42", result)
}

func TestDoRequestNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"invalid credentials"}`)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "anon-key")
	_, err := client.DoRequest(context.Background(), http.MethodGet, "/", nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid credentials")
}
