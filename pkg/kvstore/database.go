package kvstore

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// record is the single table behind the database driver: one row per key.
type record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte
}

func (record) TableName() string { return "store_records" }

// Database stores keys as rows in a relational table via GORM, so the same
// storefront state can live in sqlite, postgres, mysql or sqlserver.
type Database struct {
	db *gorm.DB
}

// NewDatabase opens the given driver/DSN, migrates the backing table and
// configures the connection pool.
func NewDatabase(driver, dsn string) (*Database, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore/database: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // pkg/logger owns logging
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore/database: open: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("kvstore/database: migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("kvstore/database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("kvstore/database: ping: %w", err)
	}

	return &Database{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

func (d *Database) Get(key string, dest interface{}) (bool, error) {
	var rec record
	err := d.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("kvstore/database: get %q: %w", key, err)
	}
	if err := decode(key, rec.Value, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (d *Database) Put(key string, value interface{}) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}

	err = d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record{Key: key, Value: data}).Error
	if err != nil {
		return fmt.Errorf("kvstore/database: put %q: %w", key, err)
	}
	return nil
}

func (d *Database) Delete(key string) error {
	if err := d.db.Delete(&record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kvstore/database: delete %q: %w", key, err)
	}
	return nil
}
