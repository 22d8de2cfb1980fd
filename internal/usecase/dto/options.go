package dto

import "github.com/lbs-gateway/pkg/lbs"

// Options - дополнительные параметры, передаваемые сервису как есть
type Options map[string]interface{}

// Params переводит опции в параметры клиента
func (o Options) Params() lbs.Params {
	if len(o) == 0 {
		return nil
	}
	p := make(lbs.Params, len(o))
	for k, v := range o {
		p[k] = v
	}
	return p
}
