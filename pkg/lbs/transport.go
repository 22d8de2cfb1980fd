package lbs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Исходы вызова для Observer
const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation"
	OutcomeTransport  = "transport"
	OutcomeDecode     = "decode"
	OutcomeService    = "service"
)

// maxBodySize ограничивает размер читаемого ответа
const maxBodySize = 16 << 20

// Get выполняет GET запрос к path с параметрами params.
func (c *Client) Get(ctx context.Context, path string, params Params) (*Envelope, error) {
	return c.call(ctx, http.MethodGet, path, params)
}

// Post выполняет POST запрос с параметрами в теле формы.
func (c *Client) Post(ctx context.Context, path string, params Params) (*Envelope, error) {
	return c.call(ctx, http.MethodPost, path, params)
}

func (c *Client) call(ctx context.Context, method, path string, params Params) (*Envelope, error) {
	req, err := c.NewRequest(method, path, params)
	if err != nil {
		c.observe(path, err, 0)
		return nil, err
	}
	return c.Send(ctx, req)
}

// Send отправляет собранный запрос и разбирает ответ. Ответ со status != 0
// возвращается как *ServiceError, без envelope.
func (c *Client) Send(ctx context.Context, req *Request) (*Envelope, error) {
	start := time.Now()
	env, err := c.send(ctx, req)
	c.observe(req.endpoint(), err, time.Since(start))
	return env, err
}

func (c *Client) send(ctx context.Context, req *Request) (*Envelope, error) {
	endpoint := req.endpoint()

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL.String()+req.Path, body)
	if err != nil {
		return nil, &TransportError{Op: req.Method, Path: endpoint, Err: err}
	}
	httpReq.Header = req.Header.Clone()

	c.logger.Debug("Calling LBS API",
		zap.String("method", req.Method),
		zap.String("endpoint", endpoint))

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, &TransportError{Op: req.Method, Path: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Error("Failed to read response", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &TransportError{Op: req.Method, Path: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("LBS API returned http error",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode))
		return nil, &TransportError{
			Op:         req.Method,
			Path:       endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	env, err := Decode(raw)
	if err != nil {
		c.logger.Error("Failed to decode response", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}

	if !env.OK() {
		c.logger.Warn("LBS API rejected request",
			zap.String("endpoint", endpoint),
			zap.Int("status", env.Status),
			zap.String("message", env.Message),
			zap.String("request_id", env.RequestID))
		return nil, env.serviceError()
	}

	c.logger.Debug("LBS API call successful",
		zap.String("endpoint", endpoint),
		zap.String("request_id", env.RequestID))

	return env, nil
}

func (c *Client) observe(endpoint string, err error, d time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveCall(endpoint, Outcome(err), d)
}

// Outcome классифицирует ошибку вызова.
func Outcome(err error) string {
	var (
		validationErr *ValidationError
		transportErr  *TransportError
		decodeErr     *DecodeError
		serviceErr    *ServiceError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &validationErr):
		return OutcomeValidation
	case errors.As(err, &transportErr):
		return OutcomeTransport
	case errors.As(err, &decodeErr):
		return OutcomeDecode
	case errors.As(err, &serviceErr):
		return OutcomeService
	default:
		return OutcomeTransport
	}
}
