package sqlstore

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/makotogo/people/internal/model"
)

// SQLite-backed storage. Single connection, single user; every call
// runs inline on the caller's goroutine.

// DefaultFileName is the store location when no -db flag is given.
const DefaultFileName = "people.db"

type Store struct {
	db *gorm.DB
}

func dsn(path string) string {
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"
}

// Open opens (creating if needed) the store at path and migrates the
// people table. A failure here is a configuration error: the caller
// has no screen to show without a store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}
	pool.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.Person{}); err != nil {
		return nil, fmt.Errorf("migrate people table: %w", err)
	}
	logrus.Debugf("store ready: %s", path)
	return &Store{db: db}, nil
}

// FetchAll returns every person in storage default order (by id).
func (s *Store) FetchAll() ([]model.Person, error) {
	var people []model.Person
	if err := s.db.Find(&people).Error; err != nil {
		return nil, fmt.Errorf("fetch all: %w", err)
	}
	return people, nil
}

// Create inserts one record. No validation; the generator is trusted.
func (s *Store) Create(p *model.Person) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

// DeleteAll removes every person and reports how many rows went away.
// Unscoped so rows do not linger as soft deletes and the reported
// count stays honest across repeated wipes.
func (s *Store) DeleteAll() (int64, error) {
	res := s.db.Unscoped().Where("1 = 1").Delete(&model.Person{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete all: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&model.Person{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (s *Store) Close() error {
	pool, err := s.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}
