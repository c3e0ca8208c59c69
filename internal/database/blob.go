package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobRow holds one persisted JSON blob under a fixed storage key.
// The whole document is written and read as one atomic value.
type BlobRow struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name.
func (BlobRow) TableName() string { return "blobs" }

// HandleRow holds the serialized backup capability handle. It is kept in a
// separate table from the document blob because the handle must survive
// document imports and resets.
type HandleRow struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name.
func (HandleRow) TableName() string { return "capability_handles" }

// GetBlob reads the blob stored under key. The second return value reports
// whether the key existed.
func GetBlob(db *gorm.DB, key string) ([]byte, bool, error) {
	var row BlobRow
	if err := db.Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Value, true, nil
}

// PutBlob overwrites the blob stored under key.
func PutBlob(db *gorm.DB, key string, value []byte) error {
	row := BlobRow{Key: key, Value: value, UpdatedAt: time.Now()}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// GetHandle reads the serialized capability handle stored under key.
func GetHandle(db *gorm.DB, key string) ([]byte, bool, error) {
	var row HandleRow
	if err := db.Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Value, true, nil
}

// PutHandle overwrites the serialized capability handle stored under key.
func PutHandle(db *gorm.DB, key string, value []byte) error {
	row := HandleRow{Key: key, Value: value, UpdatedAt: time.Now()}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// DeleteHandle removes the capability handle stored under key. Deleting a
// missing key is not an error.
func DeleteHandle(db *gorm.DB, key string) error {
	return db.Where("key = ?", key).Delete(&HandleRow{}).Error
}
