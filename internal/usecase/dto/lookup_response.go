package dto

import (
	"encoding/json"

	"github.com/lbs-gateway/internal/domain"
)

// Источник данных ответа
const (
	SourceUpstream = "upstream"
	SourceCache    = "cache"
	SourceDatabase = "database"
)

// LookupResult - полезная нагрузка ответа сервиса геолокации
type LookupResult struct {
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id,omitempty"`
	Source    string          `json:"source"`
}

// Cached - ответ отдан из кеша
func (r *LookupResult) Cached() bool {
	return r.Source == SourceCache
}

// DistrictResponse - административные единицы из локального справочника
type DistrictResponse struct {
	Districts   []domain.District `json:"districts"`
	DataVersion string            `json:"data_version,omitempty"`
}

// DistrictSyncResult - итог синхронизации справочника
type DistrictSyncResult struct {
	DataVersion string `json:"data_version"`
	Count       int    `json:"count"`
}
