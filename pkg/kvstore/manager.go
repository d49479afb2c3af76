package kvstore

import (
	"fmt"

	"github.com/shashiranjanraj/stylestore/config"
)

// Open builds the Store selected by STORE_DRIVER.
//
//	memory    — in-process, lost on exit (default)
//	file      — one JSON file per key under STORE_FILE_ROOT
//	database  — GORM table, dialect per DB_DRIVER / DATABASE_DSN
//	redis     — Redis strings at REDIS_ADDR
func Open() (Store, error) {
	switch driver := config.StoreDriver(); driver {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(config.StoreFileRoot()), nil
	case "database":
		return NewDatabase(config.DatabaseDriver(), config.DatabaseDSN())
	case "redis":
		return NewRedis(config.RedisAddr(), config.RedisPassword())
	default:
		return nil, fmt.Errorf("kvstore: unknown STORE_DRIVER %q", driver)
	}
}
