package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lbs-gateway/internal/domain"
	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/pkg/lbs"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const metaDataVersion = "data_version"

type districtRepository struct {
	db *DB
}

func NewDistrictRepository(db *DB) repository.DistrictRepository {
	return &districtRepository{db: db}
}

// districtRow - строка таблицы districts
type districtRow struct {
	ID        string         `db:"id"`
	ParentID  sql.NullString `db:"parent_id"`
	Level     int            `db:"level"`
	Name      string         `db:"name"`
	FullName  string         `db:"fullname"`
	Pinyin    pq.StringArray `db:"pinyin"`
	Lat       float64        `db:"lat"`
	Lng       float64        `db:"lng"`
	Cidx      pq.Int64Array  `db:"cidx"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r districtRow) toDomain() domain.District {
	d := domain.District{
		ID:        r.ID,
		Level:     r.Level,
		Name:      r.Name,
		FullName:  r.FullName,
		Pinyin:    []string(r.Pinyin),
		Location:  lbs.LatLng{Lat: r.Lat, Lng: r.Lng},
		UpdatedAt: r.UpdatedAt,
	}
	if r.ParentID.Valid {
		parent := r.ParentID.String
		d.ParentID = &parent
	}
	for _, v := range r.Cidx {
		d.Cidx = append(d.Cidx, int(v))
	}
	return d
}

const districtColumns = `id, parent_id, level, name, fullname, pinyin, lat, lng, cidx, updated_at`

func (r *districtRepository) ReplaceAll(ctx context.Context, snapshot *domain.DistrictSnapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM districts`); err != nil {
		return fmt.Errorf("clear districts: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO districts (id, parent_id, level, name, fullname, pinyin, lat, lng, cidx, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, d := range snapshot.Districts {
		cidx := make([]int64, 0, len(d.Cidx))
		for _, v := range d.Cidx {
			cidx = append(cidx, int64(v))
		}
		pinyin := d.Pinyin
		if pinyin == nil {
			pinyin = []string{}
		}

		if _, err := stmt.ExecContext(ctx,
			d.ID, d.ParentID, d.Level, d.Name, d.FullName,
			pq.Array(pinyin), d.Location.Lat, d.Location.Lng, pq.Array(cidx), now,
		); err != nil {
			return fmt.Errorf("insert district %s: %w", d.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO district_meta (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		metaDataVersion, snapshot.DataVersion,
	); err != nil {
		return fmt.Errorf("store data version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.db.logger.Info("Districts replaced",
		zap.Int("count", len(snapshot.Districts)),
		zap.String("data_version", snapshot.DataVersion))
	return nil
}

func (r *districtRepository) GetByID(ctx context.Context, id string) (*domain.District, error) {
	var row districtRow
	err := r.db.GetContext(ctx, &row, `SELECT `+districtColumns+` FROM districts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get district: %w", err)
	}

	d := row.toDomain()
	return &d, nil
}

func (r *districtRepository) GetChildren(ctx context.Context, parentID string) ([]domain.District, error) {
	var rows []districtRow
	var err error
	if parentID == "" {
		err = r.db.SelectContext(ctx, &rows,
			`SELECT `+districtColumns+` FROM districts WHERE level = 1 ORDER BY id`)
	} else {
		err = r.db.SelectContext(ctx, &rows,
			`SELECT `+districtColumns+` FROM districts WHERE parent_id = $1 ORDER BY id`, parentID)
	}
	if err != nil {
		return nil, fmt.Errorf("get children: %w", err)
	}

	return toDistricts(rows), nil
}

func (r *districtRepository) Search(ctx context.Context, keyword string, limit int) ([]domain.District, error) {
	pattern := "%" + escapeLike(keyword) + "%"

	var rows []districtRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+districtColumns+`
		FROM districts
		WHERE name ILIKE $1 OR fullname ILIKE $1 OR lower($2) = array_to_string(pinyin, '')
		ORDER BY level, id
		LIMIT $3`,
		pattern, keyword, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search districts: %w", err)
	}

	return toDistricts(rows), nil
}

func (r *districtRepository) DataVersion(ctx context.Context) (string, error) {
	var version string
	err := r.db.GetContext(ctx, &version, `SELECT value FROM district_meta WHERE key = $1`, metaDataVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get data version: %w", err)
	}
	return version, nil
}

func toDistricts(rows []districtRow) []domain.District {
	result := make([]domain.District, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
