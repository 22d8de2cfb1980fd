package domain

import (
	"time"

	"github.com/lbs-gateway/pkg/lbs"
)

// DistrictItem - элемент ответа district/v1 (list, getchildren, search)
type DistrictItem struct {
	ID       string     `json:"id"`
	Name     string     `json:"name,omitempty"`
	FullName string     `json:"fullname"`
	Pinyin   []string   `json:"pinyin,omitempty"`
	Location lbs.LatLng `json:"location"`
	// Cidx - диапазон [from, to] индексов дочерних элементов на следующем уровне
	Cidx []int `json:"cidx,omitempty"`
}

// District - административная единица, сохранённая локально
type District struct {
	ID        string     `json:"id" db:"id"`
	ParentID  *string    `json:"parent_id,omitempty" db:"parent_id"`
	Level     int        `json:"level,omitempty" db:"level"`
	Name      string     `json:"name" db:"name"`
	FullName  string     `json:"fullname" db:"fullname"`
	Pinyin    []string   `json:"pinyin,omitempty" db:"-"`
	Location  lbs.LatLng `json:"location" db:"-"`
	Cidx      []int      `json:"cidx,omitempty" db:"-"`
	UpdatedAt time.Time  `json:"updated_at,omitzero" db:"updated_at"`
}

// District без уровня и родителя: getchildren и search их не сообщают
func (i DistrictItem) District() District {
	name := i.Name
	if name == "" {
		name = i.FullName
	}
	return District{
		ID:       i.ID,
		Name:     name,
		FullName: i.FullName,
		Pinyin:   i.Pinyin,
		Location: i.Location,
		Cidx:     i.Cidx,
	}
}

// DistrictsFromItems - все элементы всех уровней ответа, parentID проставляется каждому
func DistrictsFromItems(levels [][]DistrictItem, parentID *string) []District {
	result := make([]District, 0)
	for _, level := range levels {
		for _, item := range level {
			d := item.District()
			d.ParentID = parentID
			result = append(result, d)
		}
	}
	return result
}

// DistrictSnapshot - полный справочник с версией данных сервиса
type DistrictSnapshot struct {
	DataVersion string
	Districts   []District
}

// FlattenDistricts превращает уровни district/v1/list в плоский список
// с parent_id. Уровень 1 - провинции, дочерние элементы элемента уровня i
// лежат на уровне i+1 в диапазоне Cidx.
func FlattenDistricts(levels [][]DistrictItem) []District {
	total := 0
	for _, level := range levels {
		total += len(level)
	}

	parents := make([][]*string, len(levels))
	for i, level := range levels {
		parents[i] = make([]*string, len(level))
	}

	result := make([]District, 0, total)
	for i, level := range levels {
		for j, item := range level {
			d := item.District()
			d.ParentID = parents[i][j]
			d.Level = i + 1
			result = append(result, d)

			if i+1 >= len(levels) || len(item.Cidx) != 2 {
				continue
			}
			id := item.ID
			from, to := item.Cidx[0], item.Cidx[1]
			for k := from; k <= to && k < len(levels[i+1]); k++ {
				if k >= 0 {
					parents[i+1][k] = &id
				}
			}
		}
	}

	return result
}
