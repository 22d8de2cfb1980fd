package lbs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Send(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		var gotQuery, gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":0,"message":"","result":{"foo":"bar"}}`))
		}))
		defer server.Close()

		c, err := New(testKey, Config{BaseURL: server.URL, Timeout: 5 * time.Second}, logger)
		require.NoError(t, err)

		env, err := c.Get(context.Background(), "/ws/place/v1/detail", Params{"id": "42"})
		require.NoError(t, err)
		require.NotNil(t, env)

		result, err := env.Result()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": "bar"}, result)
		assert.Equal(t, "id=42&key="+testKey, gotQuery)
		assert.Equal(t, userAgent, gotUA)
	})

	t.Run("service error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":311,"message":"bad key","request_id":"r-311"}`))
		}))
		defer server.Close()

		c, err := New(testKey, Config{BaseURL: server.URL}, logger)
		require.NoError(t, err)

		env, err := c.Get(context.Background(), "/ws/geocoder/v1/", Params{"address": "x"})
		assert.Nil(t, env)

		var sErr *ServiceError
		require.ErrorAs(t, err, &sErr)
		assert.Equal(t, 311, sErr.Status)
		assert.Equal(t, "bad key", sErr.Message)
		assert.Equal(t, "r-311", sErr.RequestID)
	})

	t.Run("malformed json", func(t *testing.T) {
		doer := &stubDoer{body: `{"status":0,"result":`}
		c := newTestClient(t, doer)

		env, err := c.Get(context.Background(), "/ws/geocoder/v1/", Params{"address": "x"})
		assert.Nil(t, env)

		var dErr *DecodeError
		require.ErrorAs(t, err, &dErr)
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"status":0,"result":{}}`))
		}))
		defer server.Close()

		c, err := New(testKey, Config{BaseURL: server.URL}, logger)
		require.NoError(t, err)

		env, err := c.Get(context.Background(), "/ws/location/v1/ip", Params{"ip": "1.1.1.1"})
		assert.Nil(t, env)

		var tErr *TransportError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, http.StatusBadGateway, tErr.StatusCode)
		assert.Equal(t, "/ws/location/v1/ip", tErr.Path)
	})

	t.Run("connection failure propagates cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		c := newTestClient(t, &stubDoer{err: cause})

		_, err := c.Get(context.Background(), "/ws/location/v1/ip", Params{"ip": "1.1.1.1"})

		var tErr *TransportError
		require.ErrorAs(t, err, &tErr)
		assert.ErrorIs(t, err, cause)
		assert.NotContains(t, err.Error(), testKey)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(okBody))
		}))
		defer server.Close()

		c, err := New(testKey, Config{BaseURL: server.URL}, logger)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = c.Get(ctx, "/ws/place/v1/detail", Params{"id": "1"})
		var tErr *TransportError
		require.ErrorAs(t, err, &tErr)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("post sends form body", func(t *testing.T) {
		doer := &stubDoer{body: okBody}
		c := newTestClient(t, doer)

		_, err := c.Post(context.Background(), "/ws/location/v1/network", Params{"device_id": "d-1"})
		require.NoError(t, err)

		req := doer.last()
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "", req.URL.RawQuery)
		assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
		assert.Equal(t, "device_id=d-1&key="+testKey, doer.bodies[0])
	})
}

func TestClient_Observer(t *testing.T) {
	obs := &recordingObserver{}
	doer := &stubDoer{body: okBody}
	c, err := New(testKey, Config{BaseURL: "https://lbs.test", HTTPClient: doer, Observer: obs}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.Suggestion(ctx, "北京", nil)
	require.NoError(t, err)

	_, err = c.Suggestion(ctx, "", nil)
	require.Error(t, err)

	doer.body = `{"status":120,"message":"rate limited"}`
	_, err = c.Suggestion(ctx, "北京", nil)
	require.Error(t, err)

	doer.body = `oops`
	_, err = c.Suggestion(ctx, "北京", nil)
	require.Error(t, err)

	assert.Equal(t, []call{
		{endpoint: pathPlaceSuggestion, outcome: OutcomeOK},
		{endpoint: pathPlaceSuggestion, outcome: OutcomeValidation},
		{endpoint: pathPlaceSuggestion, outcome: OutcomeService},
		{endpoint: pathPlaceSuggestion, outcome: OutcomeDecode},
	}, obs.calls)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeValidation, Outcome(missing("id")))
	assert.Equal(t, OutcomeTransport, Outcome(&TransportError{Err: errors.New("x")}))
	assert.Equal(t, OutcomeDecode, Outcome(&DecodeError{Err: errors.New("x")}))
	assert.Equal(t, OutcomeService, Outcome(&ServiceError{Status: 1}))
	assert.Equal(t, OutcomeService, Outcome(errors.Join(errors.New("ctx"), &ServiceError{Status: 1})))
}

func TestClient_ObserverRejectedMode(t *testing.T) {
	obs := &recordingObserver{}
	doer := &stubDoer{body: okBody}
	c, err := New(testKey, Config{BaseURL: "https://lbs.test", HTTPClient: doer, Observer: obs}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.Direction(ctx, Mode("../place/v1/search?x="), "39.98,116.30", "39.97,116.31", nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "mode", vErr.Field)

	_, err = c.Direction(ctx, ModeWalking, "39.98,116.30", "39.97,116.31", nil)
	require.NoError(t, err)

	assert.Equal(t, []call{
		{endpoint: pathDirection, outcome: OutcomeValidation},
		{endpoint: pathDirection + "walking/", outcome: OutcomeOK},
	}, obs.calls)
	assert.Equal(t, 1, doer.calls())
}
