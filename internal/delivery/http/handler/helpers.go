package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/lbs-gateway/internal/usecase/dto"
)

// queryOptions - параметры запроса, не разобранные обработчиком.
// Они уходят сервису геолокации как опции.
func queryOptions(c *fiber.Ctx, consumed ...string) dto.Options {
	skip := make(map[string]bool, len(consumed))
	for _, name := range consumed {
		skip[name] = true
	}

	var opts dto.Options
	for k, v := range c.Queries() {
		if skip[k] {
			continue
		}
		if opts == nil {
			opts = make(dto.Options)
		}
		opts[k] = v
	}
	return opts
}

func sendLookup(c *fiber.Ctx, res *dto.LookupResult, started time.Time) error {
	return utils.SendSuccess(c, res.Data, &utils.Meta{
		RequestID: res.RequestID,
		Cached:    res.Cached(),
		Source:    res.Source,
		TimeMSec:  float64(time.Since(started).Microseconds()) / 1000,
	})
}
