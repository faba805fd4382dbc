package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-manager/backend/internal/models"
)

// DatabaseStore keeps the serialized snapshot in a single database row,
// preserving the whole-snapshot write contract on top of SQL storage.
type DatabaseStore struct {
	db     *gorm.DB
	driver string
}

type snapshotRow struct {
	ID        int    `gorm:"primaryKey"`
	Data      string `gorm:"not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "snapshots"
}

func NewDatabaseStore(driver, dsn string) (*DatabaseStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}

	return &DatabaseStore{db: db, driver: driver}, nil
}

func (s *DatabaseStore) Load() (models.Snapshot, error) {
	var row snapshotRow
	err := s.db.First(&row, 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EmptySnapshot(), nil
		}
		return models.Snapshot{}, fmt.Errorf("failed to load snapshot row: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(row.Data), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return snapshot, nil
}

func (s *DatabaseStore) Save(snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	row := snapshotRow{ID: 1, Data: string(data), UpdatedAt: time.Now()}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save snapshot row: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Name() string {
	return "database:" + s.driver
}
