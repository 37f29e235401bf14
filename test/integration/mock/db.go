package mock

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const clearAttempts = 5

var once sync.Once
var db *Db

// Db is the shared in-memory SQLite database used by the integration suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb opens a shared in-memory SQLite database and migrates models into it.
// models is keyed by table name.
func NewDb(schema string, models map[string]any) *Db {
	once.Do(
		func() {
			db = open(schema, models)
		},
	)

	return db
}

func open(schema string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file:"+schema+"?mode=memory&cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		schema: schema,
		models: models,
	}

	if err = newDbMock.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB deletes every row of the registered tables and restarts their
// autoincrement counters. A locked database is retried a few times.
func (d *Db) ClearDB() (err error) {
	for attempt := 1; attempt <= clearAttempts; attempt++ {
		if err = d.reset(); err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "locked") && !strings.Contains(err.Error(), "busy") {
			return err
		}
		time.Sleep(50 * time.Millisecond)
	}

	return fmt.Errorf("failed to clear database after %d attempts: %w", clearAttempts, err)
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}

func (d *Db) migrate() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for _, table := range d.tables() {
			if err := tx.Migrator().DropTable(table); err != nil {
				return err
			}
		}

		models := d.modelList()
		if err := tx.AutoMigrate(models...); err != nil {
			return err
		}

		for _, model := range models {
			if !tx.Migrator().HasTable(model) {
				return fmt.Errorf("table for model %T was not created", model)
			}
		}

		return nil
	})
}

func (d *Db) reset() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for _, table := range d.tables() {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(d.models[table]).Error
			if err != nil {
				return err
			}

			err = tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
			if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
				return err
			}
		}

		return nil
	})
}

// tables returns the registered table names in a stable order.
func (d *Db) tables() []string {
	tables := make([]string, 0, len(d.models))
	for table := range d.models {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	return tables
}

func (d *Db) modelList() []any {
	tables := d.tables()
	models := make([]any, 0, len(tables))
	for _, table := range tables {
		models = append(models, d.models[table])
	}

	return models
}
