package config

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// gormConfig translates driver errors (unique violations and the like) onto
// gorm's sentinels so repositories can branch on gorm.ErrDuplicatedKey.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// ErrorLogDir returns the directory import error logs are written to.
func ErrorLogDir() string {
	if dir := os.Getenv("ERROR_LOG_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "error_logs"
	}
	return filepath.Join(wd, "error_logs")
}
