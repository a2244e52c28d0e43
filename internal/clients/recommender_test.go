package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommenderClient_Recommend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommend", r.URL.Path)
		assert.Equal(t, "g1", r.URL.Query().Get("gig_id"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"gigId":"rec1","title":"Similar gig","client_total_feedback":4.5}]`)
	}))
	defer srv.Close()

	client := NewRecommenderClient(srv.URL)
	gigs, err := client.Recommend(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, gigs, 1)
	assert.Equal(t, "rec1", gigs[0].GigID)
	assert.Equal(t, 4.5, gigs[0].ClientTotalFeedback)
}

func TestRecommenderClient_RecommendNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewRecommenderClient(srv.URL)
	_, err := client.Recommend(context.Background(), "g1")
	assert.Error(t, err)
}

func TestRecommenderClient_RecommendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewRecommenderClient(srv.URL)
	_, err := client.Recommend(context.Background(), "g1")
	assert.Error(t, err)
}

func TestRecommenderClient_PredictPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict_price", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "short", body["duration"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"price": 99.9}`)
	}))
	defer srv.Close()

	client := NewRecommenderClient(srv.URL)
	out, err := client.PredictPrice(context.Background(), json.RawMessage(`{"duration":"short"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": 99.9}`, string(out))
}

func TestRecommenderClient_PredictPriceNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewRecommenderClient(srv.URL)
	_, err := client.PredictPrice(context.Background(), json.RawMessage(`{}`))
	assert.Error(t, err)
}
