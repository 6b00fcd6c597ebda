package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Driver selects the SQL dialect the backend talks to.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Connect opens the database, migrates the schema and registers the
// callbacks that turn database errors into user facing ones.
func Connect(driver Driver, dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite, "":
		if !strings.Contains(dsn, "_pragma=foreign_keys") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn = fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, sep)
		}
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// sqlite only supports one writer, serialize connections to
	// prevent SQLITE_BUSY errors.
	if driver != DriverPostgres {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "fintrack:after_query", queryCallback},
		{db.Callback().Query().After("*"), "fintrack:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "fintrack:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "fintrack:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "fintrack:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "fintrack:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "fintrack:after_delete_general", generalCallback},
	}

	for _, cb := range callbacks {
		if err := cb.processor.Register(cb.name, cb.fn); err != nil {
			return nil, err
		}
	}

	return db, nil
}

var pluralIes = regexp.MustCompile("ies$")

// NotFound returns the user friendly error for a missing row in table.
func NotFound(table string) error {
	// Use the table name as information about the type of resource
	// and replace "_" with "[space]"
	name := strings.ReplaceAll(table, "_", " ")

	// Replace pluralized "ies" with "y"
	name = pluralIes.ReplaceAllString(name, "y")

	// Remove plural "s"
	name = strings.TrimSuffix(name, "s")

	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = NotFound(db.Statement.Table)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	if strings.Contains(msg, "UNIQUE constraint failed: users.email") ||
		(strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "email")) {
		db.Error = ErrEmailInUse
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Registry...)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
