package tavily

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-planner/internal/domain"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewAdapter("tvly-test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)
	return a
}

// TestAdapter_Name tests the Name method.
func TestAdapter_Name(t *testing.T) {
	a, err := NewAdapter("key")
	require.NoError(t, err)
	assert.Equal(t, "tavily", a.Name())
}

func TestNewAdapter_RejectsBlankKey(t *testing.T) {
	for _, key := range []string{"", "   ", "\t\n"} {
		a, err := NewAdapter(key)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	}
}

func TestNewAdapter_Options(t *testing.T) {
	client := &http.Client{}
	a, err := NewAdapter(" key ", WithBaseURL("http://localhost:9999/"), WithHTTPClient(client))
	require.NoError(t, err)

	assert.Equal(t, "key", a.apiKey)
	assert.Equal(t, "http://localhost:9999", a.baseURL)
	assert.Same(t, client, a.httpClient)
}

func TestNewAdapter_TimeoutLeavesSharedClientUntouched(t *testing.T) {
	tests := []struct {
		name string
		opts func(c *http.Client) []Option
	}{
		{
			name: "timeout after client",
			opts: func(c *http.Client) []Option { return []Option{WithHTTPClient(c), WithTimeout(3 * time.Second)} },
		},
		{
			name: "timeout before client",
			opts: func(c *http.Client) []Option { return []Option{WithTimeout(3 * time.Second), WithHTTPClient(c)} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &http.Transport{}
			shared := &http.Client{Transport: transport, Timeout: time.Minute}

			a, err := NewAdapter("key", tt.opts(shared)...)
			require.NoError(t, err)

			assert.Equal(t, time.Minute, shared.Timeout)
			assert.NotSame(t, shared, a.httpClient)
			assert.Equal(t, 3*time.Second, a.httpClient.Timeout)
			assert.Same(t, transport, a.httpClient.Transport)
		})
	}
}

func TestNewAdapter_DefaultClientTimeout(t *testing.T) {
	a, err := NewAdapter("key", WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, a.httpClient.Timeout)

	b, err := NewAdapter("key")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, b.httpClient.Timeout)
}

func TestAdapter_Search_SendsRequest(t *testing.T) {
	var got searchRequestBody
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bearer tvly-test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":"q","answer":null,"results":[]}`))
	})

	_, err := a.Search(context.Background(), domain.SearchRequest{
		Query:             "top attractions in Lisbon",
		Depth:             domain.SearchDepthAdvanced,
		MaxResults:        7,
		IncludeAnswer:     true,
		IncludeRawContent: true,
		IncludeDomains:    []string{"tripadvisor.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, "top attractions in Lisbon", got.Query)
	assert.Equal(t, "advanced", got.SearchDepth)
	assert.Equal(t, 7, got.MaxResults)
	assert.True(t, got.IncludeAnswer)
	assert.True(t, got.IncludeRawContent)
	assert.Equal(t, []string{"tripadvisor.com"}, got.IncludeDomains)
}

func TestAdapter_Search_ParsesResults(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"answer": "Lisbon is hilly.",
			"results": [
				{
					"title": " Belem Tower - Lonely Planet ",
					"url": "https://lonelyplanet.com/belem",
					"content": "A fortified tower. 4.5/5",
					"raw_content": "long page",
					"score": 0.91,
					"sources": ["tripadvisor", {"name": "fodors"}, null]
				},
				{
					"title": "Time Out Market",
					"url": "https://timeout.com/market",
					"content": "Food hall",
					"raw_content": null,
					"score": 0.5,
					"source": "timeout",
					"address": "Av. 24 de Julho 49"
				}
			]
		}`))
	})

	resp, err := a.Search(context.Background(), domain.SearchRequest{Query: "q"})
	require.NoError(t, err)

	assert.Equal(t, "Lisbon is hilly.", resp.Answer)
	require.Len(t, resp.Results, 2)

	first := resp.Results[0]
	assert.Equal(t, "Belem Tower - Lonely Planet", first.Title)
	assert.Equal(t, "long page", first.RawContent)
	assert.Equal(t, 0.91, first.Score)
	assert.Equal(t, []string{"tripadvisor", `{"name": "fodors"}`}, first.Sources)
	assert.Equal(t, "tavily", first.Source)

	second := resp.Results[1]
	assert.Empty(t, second.RawContent)
	assert.Nil(t, second.Sources)
	assert.Equal(t, "timeout", second.Source)
	assert.Equal(t, "Av. 24 de Julho 49", second.Address)
}

func TestAdapter_Search_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
		wantMsg  string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"detail":"invalid api key"}`,
			wantKind: domain.ErrSearchAPI,
			wantMsg:  "status 401",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     "upstream down",
			wantKind: domain.ErrSearchAPI,
			wantMsg:  "upstream down",
		},
		{
			name:     "malformed json",
			status:   http.StatusOK,
			body:     `{"results": [`,
			wantKind: domain.ErrUnexpectedSearch,
			wantMsg:  "failed to parse response",
		},
		{
			name:     "wrong shape",
			status:   http.StatusOK,
			body:     `{"results": "nope"}`,
			wantKind: domain.ErrUnexpectedSearch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := a.Search(context.Background(), domain.SearchRequest{Query: "q"})
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantKind))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestAdapter_Search_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a, err := NewAdapter("key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = a.Search(context.Background(), domain.SearchRequest{Query: "q"})
	assert.True(t, domain.IsSearchAPI(err))
}

func TestAdapter_Search_ContextDeadline(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Search(ctx, domain.SearchRequest{Query: "q"})
	require.Error(t, err)
	assert.True(t, domain.IsSearchAPI(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
