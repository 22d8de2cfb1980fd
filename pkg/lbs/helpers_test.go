package lbs

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKey = "TEST-KEY"

// stubDoer - транспорт-заглушка, запоминает запросы
type stubDoer struct {
	mu       sync.Mutex
	status   int
	body     string
	err      error
	requests []*http.Request
	bodies   []string
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		s.bodies = append(s.bodies, string(b))
	} else {
		s.bodies = append(s.bodies, "")
	}

	if s.err != nil {
		return nil, s.err
	}
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    req,
	}, nil
}

func (s *stubDoer) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *stubDoer) last() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

type call struct {
	endpoint string
	outcome  string
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []call
}

func (o *recordingObserver) ObserveCall(endpoint, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, call{endpoint: endpoint, outcome: outcome})
}

func newTestClient(t *testing.T, doer Doer) *Client {
	t.Helper()
	c, err := New(testKey, Config{BaseURL: "https://lbs.test", HTTPClient: doer}, zap.NewNop())
	require.NoError(t, err)
	return c
}

const okBody = `{"status":0,"message":"query ok","request_id":"req-1","result":{"foo":"bar"}}`
