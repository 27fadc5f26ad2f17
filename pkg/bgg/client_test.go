package bgg

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalItemXML = `
<items>
  <item type="boardgame" id="13">
    <name type="primary" value="CATAN"/>
  </item>
</items>`

// sequenceServer answers each request with the next queued status; the
// final status carries the body.
func sequenceServer(t *testing.T, statuses []int, body string) (*httptest.Server, *int) {
	t.Helper()
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := statuses[len(statuses)-1]
		if requests < len(statuses) {
			status = statuses[requests]
		}
		requests++
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(body))
		}
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	})
}

func TestGetGameDetailsRetriesProcessing(t *testing.T) {
	server, requests := sequenceServer(t, []int{http.StatusAccepted, http.StatusAccepted, http.StatusOK}, minimalItemXML)
	client := newTestClient(server.URL)

	record, err := client.GetGameDetails("13")
	require.NoError(t, err)
	assert.Equal(t, "CATAN", record.Names.Primary)
	assert.Equal(t, 3, *requests)
}

func TestGetGameDetailsExhaustsRetries(t *testing.T) {
	server, requests := sequenceServer(t, []int{http.StatusAccepted, http.StatusAccepted, http.StatusAccepted}, "")
	client := newTestClient(server.URL)

	_, err := client.GetGameDetails("13")
	require.Error(t, err)
	assert.True(t, IsFetchKind(err, FetchExhausted))
	assert.Equal(t, 3, *requests)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 3, fetchErr.Attempts)
	assert.Equal(t, "13", fetchErr.GameID)
}

func TestGetGameDetailsTransportFailureNotRetried(t *testing.T) {
	server, requests := sequenceServer(t, []int{http.StatusInternalServerError}, "")
	client := newTestClient(server.URL)

	_, err := client.GetGameDetails("13")
	require.Error(t, err)
	assert.True(t, IsFetchKind(err, FetchTransport))
	assert.Equal(t, 1, *requests)
}

func TestGetGameDetailsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken xml", "<items><item"},
		{"no items", "<items></items>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, requests := sequenceServer(t, []int{http.StatusOK}, tt.body)
			client := newTestClient(server.URL)

			_, err := client.GetGameDetails("13")
			require.Error(t, err)
			assert.True(t, IsFetchKind(err, FetchMalformedPayload))
			assert.Equal(t, 1, *requests)
		})
	}
}

func TestGetGameDetailsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:     server.URL,
		Timeout:     20 * time.Millisecond,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	})

	_, err := client.GetGameDetails("13")
	require.Error(t, err)
	assert.True(t, IsFetchKind(err, FetchTimeout))
}

func TestGetGameDetailsFillsMissingID(t *testing.T) {
	server, _ := sequenceServer(t, []int{http.StatusOK}, `
<items>
  <item type="boardgame">
    <name type="primary" value="No ID"/>
  </item>
</items>`)
	client := newTestClient(server.URL)

	record, err := client.GetGameDetails("77")
	require.NoError(t, err)
	assert.Equal(t, "77", record.ID)
}

func TestSearchGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "catan", r.URL.Query().Get("query"))
		assert.Equal(t, "boardgame", r.URL.Query().Get("type"))
		w.Write([]byte(`
<items total="2">
  <item type="boardgame" id="13">
    <name type="primary" value="CATAN"/>
    <yearpublished value="1995"/>
  </item>
  <item type="boardgame" id="27710">
    <name type="primary" value="Catan Dice Game"/>
  </item>
</items>`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server.URL)
	results, err := client.SearchGames("catan")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, SearchResult{ID: "13", Name: "CATAN", Year: "1995"}, results[0])
	assert.Equal(t, SearchResult{ID: "27710", Name: "Catan Dice Game"}, results[1])
}

func TestSearchGamesTransportError(t *testing.T) {
	server, _ := sequenceServer(t, []int{http.StatusServiceUnavailable}, "")
	client := newTestClient(server.URL)

	_, err := client.SearchGames("catan")
	require.Error(t, err)
	assert.True(t, IsFetchKind(err, FetchTransport))
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(ClientConfig{})
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, 3, client.maxAttempts)
	assert.Equal(t, 3*time.Second, client.retryDelay)
	assert.Equal(t, 15*time.Second, client.httpClient.Timeout)
}
