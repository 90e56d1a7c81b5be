package persistence_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"results_api/internal/domain/entity"
	"results_api/internal/domain/value"
	"results_api/internal/infrastructure/persistence"
	"results_api/pkg/application/connectors"
	"results_api/pkg/dbtest"
)

func TestResultRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewResultRepository(dbtest.NewSQLite(t))

	results, err := repo.List(ctx)
	rq.NoError(err)
	rq.Empty(results)

	liked, err := value.ParseItems([]byte(`["red", 2]`))
	rq.NoError(err)

	company := "Acme"

	rq.NoError(repo.Create(ctx, entity.Submission{Name: "Ann", Phone: "111", Company: &company, Liked: liked}))
	rq.NoError(repo.Create(ctx, entity.Submission{Name: "Bob", Phone: "222"}))
	rq.NoError(repo.Create(ctx, entity.Submission{Name: "Cid", Phone: "333", Noped: value.Items{}}))

	results, err = repo.List(ctx)
	rq.NoError(err)
	rq.Len(results, 3)

	rq.Equal([]string{"Cid", "Bob", "Ann"}, []string{results[0].Name, results[1].Name, results[2].Name})

	for i := 1; i < len(results); i++ {
		rq.False(results[i].CreatedAt.After(results[i-1].CreatedAt))
	}

	ann := results[2]
	rq.Equal("111", ann.Phone)
	rq.Equal(&company, ann.CompanyName)
	rq.JSONEq(`["red",2]`, *ann.LikedItems)
	rq.Nil(ann.NopedItems)
	rq.False(ann.CreatedAt.IsZero())

	bob := results[1]
	rq.Nil(bob.CompanyName)
	rq.Nil(bob.LikedItems)

	cid := results[0]
	rq.Equal("[]", *cid.NopedItems)

	deleted, err := repo.DeleteAll(ctx)
	rq.NoError(err)
	rq.Equal(int64(3), deleted)

	results, err = repo.List(ctx)
	rq.NoError(err)
	rq.Empty(results)

	deleted, err = repo.DeleteAll(ctx)
	rq.NoError(err)
	rq.Zero(deleted)
}

func TestResultRepository_NoTable(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewResultRepository(&connectors.SQL{
		Driver: connectors.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "empty.db"),
	})

	_, err := repo.List(ctx)
	rq.ErrorContains(err, "no such table")

	err = repo.Create(ctx, entity.Submission{Name: "Ann", Phone: "111"})
	rq.ErrorContains(err, "no such table")

	_, err = repo.DeleteAll(ctx)
	rq.ErrorContains(err, "no such table")
}

func TestResultRepository_ListOrdersByCreatedAt(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	conn := dbtest.NewSQLite(t)

	db, err := conn.Acquire(ctx)
	rq.NoError(err)

	// Ids grow in insertion order while timestamps do not.
	rows := []struct {
		name      string
		createdAt string
	}{
		{name: "latest", createdAt: "2024-05-03 09:00:00"},
		{name: "oldest", createdAt: "2024-05-01 09:00:00"},
		{name: "middle", createdAt: "2024-05-02 09:00:00"},
		{name: "middle-tie", createdAt: "2024-05-02 09:00:00"},
	}

	for _, row := range rows {
		_, err = db.ExecContext(ctx,
			`INSERT INTO results (name, phone, created_at) VALUES (?, ?, ?)`,
			row.name, "000", row.createdAt,
		)
		rq.NoError(err)
	}

	conn.Release(ctx, db)

	results, err := persistence.NewResultRepository(conn).List(ctx)
	rq.NoError(err)
	rq.Len(results, len(rows))

	names := make([]string, 0, len(results))
	for _, result := range results {
		names = append(names, result.Name)
	}

	rq.Equal([]string{"latest", "middle-tie", "middle", "oldest"}, names)
	rq.Equal(time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC), results[0].CreatedAt.UTC())
}
