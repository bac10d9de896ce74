package database

import (
	"fmt"
	"sync"

	"supply-chain-app/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// Connection hands out the shared *gorm.DB. The first successful open also
// bootstraps the schema, so a store that is down at boot only costs a warning;
// requests keep retrying until it comes back.
type Connection struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewConnection() *Connection {
	return &Connection{}
}

// FromDB wraps an already-open handle, skipping the lazy bootstrap.
func FromDB(db *gorm.DB) *Connection {
	return &Connection{db: db}
}

// DB returns the shared handle, opening and migrating the database on first use.
func (c *Connection) DB() (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	if err := EnsureDatabaseExists(config.DBName); err != nil {
		return nil, err
	}

	db, err := OpenDatabaseConnection(config.DBName)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if config.SeedData {
		RunSeeders(db)
	}

	c.db = db
	return c.db, nil
}

func OpenDatabaseConnection(dbName string) (*gorm.DB, error) {
	dialector, err := getDialector(dbName)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func getDialector(dbName string) (gorm.Dialector, error) {
	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return mysql.Open(dsn), nil
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", config.DBDriver)
	}
}

// EnsureDatabaseExists connects to the server without a database name and
// creates the target database when it is missing.
func EnsureDatabaseExists(dbName string) error {
	var db *gorm.DB
	var err error

	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBPort)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=master",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		db, err = gorm.Open(sqlserver.Open(dsn), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", config.DBDriver)
	}

	if err != nil {
		return err
	}

	switch config.DBDriver {
	case "postgres":
		db.Exec("CREATE DATABASE " + dbName)
	case "mysql":
		db.Exec("CREATE DATABASE IF NOT EXISTS " + dbName)
	case "mssql":
		db.Exec("IF DB_ID('" + dbName + "') IS NULL CREATE DATABASE " + dbName)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	return nil
}
