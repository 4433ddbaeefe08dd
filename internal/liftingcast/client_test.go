package liftingcast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeetID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare id", "m123abc", "m123abc", false},
		{"bare id padded", "  m123abc  ", "m123abc", false},
		{"full url", "https://liftingcast.com/meets/mwqxyz123/roster", "mwqxyz123", false},
		{"url without path", "https://liftingcast.com/", "", true},
		{"url meets at end", "https://liftingcast.com/meets", "", true},
		{"empty", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMeetID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchMeetDocsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchMeetDocs(context.Background(), "mmissing")

	var ingestErr *IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Equal(t, KindNotFound, ingestErr.Kind)
	assert.Equal(t, "mmissing", ingestErr.MeetID)
	assert.Contains(t, ingestErr.Error(), "mmissing")
}

func TestFetchMeetDocsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchMeetDocs(context.Background(), "m1")

	var ingestErr *IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Equal(t, KindHTTPStatus, ingestErr.Kind)
	assert.Contains(t, ingestErr.Error(), "502")
}

func TestFetchMeetDocsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"docs not a list", `{"docs": {"oops": true}}`},
		{"docs missing", `{"rows": []}`},
		{"not json", `<html>maintenance</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			_, err := client.FetchMeetDocs(context.Background(), "m1")

			var ingestErr *IngestError
			require.ErrorAs(t, err, &ingestErr)
			assert.Equal(t, KindBadPayload, ingestErr.Kind)
		})
	}
}

func TestFetchMeetDocsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchMeetDocs(context.Background(), "m1")

	var ingestErr *IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Equal(t, KindNetwork, ingestErr.Kind)
	assert.Error(t, ingestErr.Err)
}

func TestFetchMeetDocsSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"docs": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	docs, err := client.FetchMeetDocs(context.Background(), "m1")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, "PowerTrack/1.2", gotAgent)
}

func TestFlexFieldsDecodeMixedTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs": [
			{"_id": "a1", "lifterId": "l1", "liftName": "squat", "attemptNumber": 1, "weight": "182.5", "result": "good"},
			{"_id": "a2", "lifterId": "l1", "liftName": "bench", "attemptNumber": "2", "weight": 120, "result": "bad"},
			{"_id": "l1", "bodyWeight": "not-a-number"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	docs, err := client.FetchMeetDocs(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "1", string(docs[0].AttemptNumber))
	assert.True(t, docs[0].Weight.Valid)
	assert.InDelta(t, 182.5, docs[0].Weight.Value, 1e-9)

	assert.Equal(t, "2", string(docs[1].AttemptNumber))
	assert.InDelta(t, 120.0, docs[1].Weight.Value, 1e-9)

	assert.False(t, docs[2].BodyWeight.Valid)
}
