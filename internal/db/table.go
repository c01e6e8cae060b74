package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

const batchSize = 200

// Collection is a keyed set of records of one kind.
type Collection[T any] interface {
	Add(ctx context.Context, record *T) error
	Update(ctx context.Context, id string, apply func(*T)) (T, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (T, bool, error)
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
	Put(ctx context.Context, record *T) error
	PutBatch(ctx context.Context, records []T) error
}

// Table is the gorm backed Collection. The table name comes from T.
type Table[T any] struct {
	database *gorm.DB
	name     string
}

func NewTable[T any](database *gorm.DB, name string) *Table[T] {
	return &Table[T]{database: database, name: name}
}

func (table *Table[T]) Add(ctx context.Context, record *T) error {
	if err := table.database.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("add %s: %w", table.name, err)
	}
	return nil
}

// Update loads the record, lets apply modify it and writes it back, all in one
// transaction. The stored record is returned.
func (table *Table[T]) Update(ctx context.Context, id string, apply func(*T)) (T, error) {
	var record T
	err := table.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s %s", ErrNotFound, table.name, id)
			}
			return err
		}
		apply(&record)
		// apply owns the timestamps; skip gorm's autoUpdateTime.
		return tx.Session(&gorm.Session{SkipHooks: true}).Save(&record).Error
	})
	if err != nil {
		var zero T
		if errors.Is(err, ErrNotFound) {
			return zero, err
		}
		return zero, fmt.Errorf("update %s %s: %w", table.name, id, err)
	}
	return record, nil
}

// Delete removes the record with id. Deleting an absent id is not an error.
func (table *Table[T]) Delete(ctx context.Context, id string) error {
	if err := table.database.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("delete %s %s: %w", table.name, id, err)
	}
	return nil
}

func (table *Table[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var record T
	err := table.database.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, false, nil
	}
	if err != nil {
		return record, false, fmt.Errorf("get %s %s: %w", table.name, id, err)
	}
	return record, true, nil
}

// List returns every record in insertion order.
func (table *Table[T]) List(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	if err := table.database.WithContext(ctx).Order("rowid ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", table.name, err)
	}
	return records, nil
}

func (table *Table[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := table.database.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", table.name, err)
	}
	return count, nil
}

func (table *Table[T]) Clear(ctx context.Context) error {
	if err := table.database.WithContext(ctx).Where("1 = 1").Delete(new(T)).Error; err != nil {
		return fmt.Errorf("clear %s: %w", table.name, err)
	}
	return nil
}

// Put inserts record or overwrites the stored record with the same id.
func (table *Table[T]) Put(ctx context.Context, record *T) error {
	if err := table.upsert(table.database.WithContext(ctx)).Create(record).Error; err != nil {
		return fmt.Errorf("put %s: %w", table.name, err)
	}
	return nil
}

func (table *Table[T]) PutBatch(ctx context.Context, records []T) error {
	if len(records) == 0 {
		return nil
	}
	if err := table.upsert(table.database.WithContext(ctx)).CreateInBatches(&records, batchSize).Error; err != nil {
		return fmt.Errorf("put %d %s: %w", len(records), table.name, err)
	}
	return nil
}

func (table *Table[T]) upsert(database *gorm.DB) *gorm.DB {
	return database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	})
}
