package db

import "github.com/jmoiron/sqlx"

// queryIn expands a sqlx IN (?) clause and rebinds it for Postgres.
func queryIn(query string, args ...interface{}) (string, []interface{}, error) {
	q, expanded, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, err
	}
	return DB.Rebind(q), expanded, nil
}
