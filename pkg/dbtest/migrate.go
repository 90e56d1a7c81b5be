package dbtest

import (
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
)

// Migrate executes all SQL queries from the files of fsys over a database
// connection.
func Migrate(db *sqlx.DB, fsys fs.FS, fileNames ...string) error {
	for _, fileName := range fileNames {
		fileBytes, err := fs.ReadFile(fsys, fileName)
		if err != nil {
			return fmt.Errorf("fs.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(fileBytes)); err != nil {
			return fmt.Errorf("db.Exec: %w", err)
		}
	}

	return nil
}
