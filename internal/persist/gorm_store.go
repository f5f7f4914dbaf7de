package persist

import (
	"context"

	"gorm.io/gorm"
)

// TableName keeps the snapshot in a single flat table.
func (Record) TableName() string { return "inventory_products" }

// GormStore persists the inventory snapshot in postgres. Save replaces the
// whole table inside one transaction, mirroring the all-or-nothing file
// store semantics.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context) ([]Record, error) {
	var records []Record
	err := s.db.WithContext(ctx).Order("product_id ASC").Find(&records).Error
	return records, err
}

func (s *GormStore) Save(ctx context.Context, records []Record) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
