// Package schema holds the DDL of the results table for each supported
// driver. Applying it is left to the operator; tests apply sqlite.sql.
package schema

import "embed"

//go:embed *.sql
var FS embed.FS

const (
	MySQL    = "mysql.sql"
	Postgres = "postgres.sql"
	SQLite   = "sqlite.sql"
)
