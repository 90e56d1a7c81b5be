package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"results_api/internal/domain/entity"
)

// resultSchema внутренняя структура для маппинга строки results.
type resultSchema struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Phone       string         `db:"phone"`
	CompanyName sql.NullString `db:"company_name"`
	LikedItems  sql.NullString `db:"liked_items"`
	NopedItems  sql.NullString `db:"noped_items"`
	CreatedAt   dbTime         `db:"created_at"`
}

func (s *resultSchema) toDomain() (entity.Result, error) {
	return entity.Result{
		ID:          s.ID,
		Name:        s.Name,
		Phone:       s.Phone,
		CompanyName: nullableString(s.CompanyName),
		LikedItems:  nullableString(s.LikedItems),
		NopedItems:  nullableString(s.NopedItems),
		CreatedAt:   time.Time(s.CreatedAt),
	}, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}

	return &ns.String
}

// dbTime принимает created_at в любом виде, который отдают драйверы:
// time.Time (mysql с parseTime, pgx) или текст (sqlite).
type dbTime time.Time

var dbTimeLayouts = []string{ //nolint:gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = dbTime(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		*t = dbTime(time.Time{})
		return nil
	default:
		return fmt.Errorf("created_at: unsupported type %T", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range dbTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = dbTime(parsed)
			return nil
		}
	}

	return fmt.Errorf("created_at: unsupported format %q", s)
}
