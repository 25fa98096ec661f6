package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance for the given DSN.
func NewMySQL(dsn string) (*gorm.DB, error) {
	// TranslateError surfaces MySQL duplicate-entry errors as
	// gorm.ErrDuplicatedKey so callers can map them to conflicts.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
