package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. dbName is spliced into the
// DSN when the DSN does not already name a database.
func NewMySQL(dsn, dbName string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(WithDatabase(dsn, dbName)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// WithDatabase fills the DSN's database segment with name when it is empty.
// A DSN that already names a database wins over the configured default.
func WithDatabase(dsn, name string) string {
	rest, query := dsn, ""
	if i := strings.Index(dsn, "?"); i >= 0 {
		rest, query = dsn[:i], dsn[i:]
	}
	i := strings.LastIndex(rest, "/")
	if i < 0 || rest[i+1:] != "" {
		return dsn
	}
	return rest + name + query
}
