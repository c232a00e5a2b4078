package implementation

import (
	"context"
	stderrors "errors"

	"bondify-be/internal/model"
	"bondify-be/internal/repository/contract"
	"bondify-be/pkg/database"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressSQLiteRepository keeps progress in a local SQLite file.
type ProgressSQLiteRepository struct {
	db *gorm.DB
}

var _ contract.ProgressRepository = (*ProgressSQLiteRepository)(nil)

// OpenProgressSQLite opens (or creates) the database at path. Use ":memory:"
// for a throwaway store.
func OpenProgressSQLite(path string) (*ProgressSQLiteRepository, error) {
	db, err := database.NewSQLiteGormDB(path)
	if err != nil {
		return nil, errors.Wrap(err, "open progress database")
	}
	repo, err := NewProgressSQLiteRepository(db)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	return repo, nil
}

// NewProgressSQLiteRepository migrates the progress table on db.
func NewProgressSQLiteRepository(db *gorm.DB) (*ProgressSQLiteRepository, error) {
	if err := database.Migrate(db, &model.ProgressEntry{}); err != nil {
		return nil, errors.Wrap(err, "init progress database")
	}
	return &ProgressSQLiteRepository{db: db}, nil
}

func (r *ProgressSQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *ProgressSQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var m model.ProgressEntry
	if err := r.db.WithContext(ctx).Where("name = ?", key).First(&m).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "get %s", key)
	}
	return m.Value, true, nil
}

func (r *ProgressSQLiteRepository) Set(ctx context.Context, key, value string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&model.ProgressEntry{Name: key, Value: value}).Error
	return errors.Wrapf(err, "set %s", key)
}

func (r *ProgressSQLiteRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Where("name IN ?", keys).Delete(&model.ProgressEntry{}).Error
	return errors.Wrap(err, "delete progress")
}
