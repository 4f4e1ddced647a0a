package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/charleslimjh/tp/internal/domain"
)

type eateryRecord struct {
	ID       string      `gorm:"primaryKey;type:text"`
	Position int         `gorm:"not null;uniqueIndex"`
	Name     string      `gorm:"type:text;not null"`
	Phone    string      `gorm:"type:text;not null"`
	Cuisine  string      `gorm:"type:text;not null"`
	Location string      `gorm:"type:text;not null"`
	Tags     []tagRecord `gorm:"foreignKey:EateryID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

func (eateryRecord) TableName() string { return "eateries" }

type tagRecord struct {
	EateryID string `gorm:"primaryKey;type:text"`
	Tag      string `gorm:"primaryKey;type:text"`
}

func (tagRecord) TableName() string { return "eatery_tags" }

// sqliteEateryRepo implements EateryRepo on an embedded SQLite file.
type sqliteEateryRepo struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path and
// migrates its schema.
func OpenSQLite(path string) (Store, error) {
	if path == "" {
		return nil, fmt.Errorf("repo.OpenSQLite: sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("repo.OpenSQLite: create dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: get database instance: %w", err)
	}
	// SQLite only supports one writer.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&eateryRecord{}, &tagRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: migrate: %w", err)
	}
	return &sqliteEateryRepo{db: db}, nil
}

func (r *sqliteEateryRepo) Load(ctx context.Context) ([]*domain.Eatery, error) {
	var records []eateryRecord
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tag") }).
		Order("position").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("repo.EateryRepo.Load: %w", err)
	}

	rows := make([]eateryRow, 0, len(records))
	for _, rec := range records {
		tags := make([]string, 0, len(rec.Tags))
		for _, t := range rec.Tags {
			tags = append(tags, t.Tag)
		}
		rows = append(rows, eateryRow{
			Name:     rec.Name,
			Phone:    rec.Phone,
			Cuisine:  rec.Cuisine,
			Location: rec.Location,
			Tags:     tags,
		})
	}

	eateries, err := toEateries(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.EateryRepo.Load: %w", err)
	}
	return eateries, nil
}

func (r *sqliteEateryRepo) Save(ctx context.Context, eateries []*domain.Eatery) error {
	records := make([]eateryRecord, 0, len(eateries))
	for i, e := range eateries {
		row := toRow(e)
		id := uuid.NewString()
		rec := eateryRecord{
			ID:       id,
			Position: i,
			Name:     row.Name,
			Phone:    row.Phone,
			Cuisine:  row.Cuisine,
			Location: row.Location,
		}
		for _, tag := range row.Tags {
			rec.Tags = append(rec.Tags, tagRecord{EateryID: id, Tag: tag})
		}
		records = append(records, rec)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&tagRecord{}).Error; err != nil {
			return fmt.Errorf("clear tags: %w", err)
		}
		if err := all.Delete(&eateryRecord{}).Error; err != nil {
			return fmt.Errorf("clear eateries: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		// Create also inserts each record's Tags association.
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.EateryRepo.Save: %w", err)
	}
	return nil
}

func (r *sqliteEateryRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("repo.EateryRepo.Close: %w", err)
	}
	return sqlDB.Close()
}
