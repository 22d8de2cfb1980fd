package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// CacheObserver - учёт попаданий в кеш (metrics.LBSMetrics)
type CacheObserver interface {
	CacheHit(endpoint string)
	CacheMiss(endpoint string)
}

type nopCacheObserver struct{}

func (nopCacheObserver) CacheHit(string)  {}
func (nopCacheObserver) CacheMiss(string) {}

// envelopeFields - служебные поля конверта, не входящие в полезную нагрузку
var envelopeFields = map[string]bool{"status": true, "message": true, "request_id": true}

// Lookup - read-through кеш конвертов сервиса геолокации в Redis.
// Кешируются только успешные ответы.
type Lookup struct {
	cacheRepo repository.CacheRepository
	observer  CacheObserver
	logger    *zap.Logger
	ttl       time.Duration
}

// NewLookup создаёт Lookup. cacheRepo == nil или ttl <= 0 отключают кеш.
func NewLookup(cacheRepo repository.CacheRepository, observer CacheObserver, logger *zap.Logger, ttl time.Duration) *Lookup {
	if observer == nil {
		observer = nopCacheObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lookup{
		cacheRepo: cacheRepo,
		observer:  observer,
		logger:    logger,
		ttl:       ttl,
	}
}

// CacheKey - ключ вида lbs:<endpoint>:<xxhash64 канонического запроса>
func CacheKey(endpoint string, params lbs.Params) (string, error) {
	query, err := params.Encode()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("lbs:%s:%016x", endpoint, xxhash.Sum64String(query)), nil
}

// RenderFunc превращает конверт в поле data ответа шлюза
type RenderFunc func(env *lbs.Envelope) (json.RawMessage, error)

// Fetch отдаёт ответ из кеша или вызывает call и кеширует успешный ответ.
// params должны однозначно описывать запрос (именованные параметры + опции).
func (l *Lookup) Fetch(
	ctx context.Context,
	endpoint string,
	params lbs.Params,
	call func(ctx context.Context) (*lbs.Envelope, error),
) (*dto.LookupResult, error) {
	return l.FetchRendered(ctx, endpoint, params, call, payload)
}

// FetchRendered - Fetch с собственным преобразованием конверта.
// В кеше всегда лежит исходный конверт.
func (l *Lookup) FetchRendered(
	ctx context.Context,
	endpoint string,
	params lbs.Params,
	call func(ctx context.Context) (*lbs.Envelope, error),
	render RenderFunc,
) (*dto.LookupResult, error) {
	if !l.enabled() {
		return l.fetchUpstream(ctx, call, render)
	}

	key, err := CacheKey(endpoint, params)
	if err != nil {
		// параметры некорректны, клиент вернёт типизированную ошибку
		return l.fetchUpstream(ctx, call, render)
	}

	if env := l.fromCache(ctx, key); env != nil {
		l.observer.CacheHit(endpoint)
		return toLookupResult(env, dto.SourceCache, render)
	}
	l.observer.CacheMiss(endpoint)

	env, err := call(ctx)
	if err != nil {
		return nil, err
	}

	if err := l.cacheRepo.Set(ctx, key, env.Bytes(), l.ttl); err != nil {
		l.logger.Warn("Failed to cache lookup", zap.String("endpoint", endpoint), zap.Error(err))
	}

	return toLookupResult(env, dto.SourceUpstream, render)
}

func (l *Lookup) enabled() bool {
	return l.cacheRepo != nil && l.ttl > 0
}

func (l *Lookup) fetchUpstream(
	ctx context.Context,
	call func(ctx context.Context) (*lbs.Envelope, error),
	render RenderFunc,
) (*dto.LookupResult, error) {
	env, err := call(ctx)
	if err != nil {
		return nil, err
	}
	return toLookupResult(env, dto.SourceUpstream, render)
}

// fromCache - nil при промахе, ошибке Redis или испорченной записи
func (l *Lookup) fromCache(ctx context.Context, key string) *lbs.Envelope {
	data, err := l.cacheRepo.Get(ctx, key)
	if err != nil {
		l.logger.Warn("Cache unavailable, falling back to upstream", zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	env, err := lbs.Decode(data)
	if err != nil || !env.OK() {
		l.logger.Warn("Dropping corrupted cache entry", zap.String("key", key))
		_ = l.cacheRepo.Delete(ctx, key)
		return nil
	}
	return env
}

func toLookupResult(env *lbs.Envelope, source string, render RenderFunc) (*dto.LookupResult, error) {
	data, err := render(env)
	if err != nil {
		return nil, err
	}
	return &dto.LookupResult{
		Data:      data,
		RequestID: env.RequestID,
		Source:    source,
	}, nil
}

// payload - поле result, а если его нет (place/v1/search отдаёт data и count),
// все неслужебные поля конверта одним объектом
func payload(env *lbs.Envelope) (json.RawMessage, error) {
	if raw, err := env.RawResult(); err == nil {
		return raw, nil
	}

	rest := make(map[string]json.RawMessage)
	for _, k := range env.Keys() {
		if envelopeFields[k] {
			continue
		}
		rest[k], _ = env.Get(k)
	}
	data, err := json.Marshal(rest)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return data, nil
}

// withNamed - параметры для ключа кеша: опции плюс именованные параметры
func withNamed(opts dto.Options, named lbs.Params) lbs.Params {
	p := opts.Params()
	if p == nil {
		p = make(lbs.Params, len(named))
	}
	for k, v := range named {
		p[k] = v
	}
	return p
}
