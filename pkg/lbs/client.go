// Package lbs - клиент веб-сервиса геолокации (apis.map.qq.com).
//
// Клиент собирает запросы к фиксированному набору эндпоинтов (поиск мест,
// геокодирование, маршруты, административное деление, перевод координат,
// определение местоположения по IP и по сетевым данным устройства),
// подставляет ключ доступа в каждый запрос и разбирает ответ вида
// {status, message, result}. Ответ с status != 0 превращается в *ServiceError.
//
//	client, err := lbs.New("YOUR-KEY", lbs.Config{}, logger)
//	env, err := client.Geocode(ctx, "北京市海淀区彩和坊路海淀西大街74号", nil)
//	var res struct{ Location lbs.LatLng `json:"location"` }
//	err = env.DecodeResult(&res)
package lbs

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL - адрес сервиса по умолчанию
	DefaultBaseURL = "https://apis.map.qq.com"

	// DefaultTimeout - таймаут HTTP клиента по умолчанию
	DefaultTimeout = 10 * time.Second

	// KeyParam - имя параметра, в котором передаётся ключ доступа
	KeyParam = "key"

	userAgent = "lbs-gateway/1.0"
)

// Doer - внешний HTTP транспорт. *http.Client удовлетворяет интерфейсу.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer получает результат каждого вызова (для метрик).
type Observer interface {
	ObserveCall(endpoint, outcome string, duration time.Duration)
}

// Config - необязательные настройки транспорта. Читается один раз в New.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Headers    map[string]string
	HTTPClient Doer
	Observer   Observer
}

// Client - клиент сервиса. После создания не изменяется и безопасен
// для конкурентного использования.
type Client struct {
	key      string
	baseURL  *url.URL
	headers  http.Header
	doer     Doer
	observer Observer
	logger   *zap.Logger
}

// New создает клиент с ключом доступа key.
func New(key string, cfg Config, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("lbs: key is required")
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.New("lbs: invalid base url " + base)
	}

	doer := cfg.HTTPClient
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", userAgent)
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		key:      key,
		baseURL:  baseURL,
		headers:  headers,
		doer:     doer,
		observer: cfg.Observer,
		logger:   logger.Named("lbs"),
	}, nil
}

// BaseURL возвращает адрес сервиса.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
