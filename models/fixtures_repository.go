package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// FixturesRepository reads the catalog collections from a database.
type FixturesRepository struct {
	db *gorm.DB
}

func NewFixturesRepository(db *gorm.DB) *FixturesRepository {
	return &FixturesRepository{
		db: db,
	}
}

// Load returns all users, categories and products ordered by id.
func (r *FixturesRepository) Load(ctx context.Context) (Fixtures, error) {
	var f Fixtures
	db := r.db.WithContext(ctx)

	if err := db.Order("id").Find(&f.Users).Error; err != nil {
		return Fixtures{}, fmt.Errorf("load users: %w", err)
	}
	if err := db.Order("id").Find(&f.Categories).Error; err != nil {
		return Fixtures{}, fmt.Errorf("load categories: %w", err)
	}
	if err := db.Order("id").Find(&f.Products).Error; err != nil {
		return Fixtures{}, fmt.Errorf("load products: %w", err)
	}
	return f, nil
}

// SeedIfEmpty inserts the given fixtures when the products table is empty.
// It reports whether anything was written.
func (r *FixturesRepository) SeedIfEmpty(ctx context.Context, f Fixtures) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 || f.Empty() {
		return false, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(f.Users) > 0 {
			if err := tx.Create(&f.Users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		if len(f.Categories) > 0 {
			if err := tx.Create(&f.Categories).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
		}
		if len(f.Products) > 0 {
			if err := tx.Create(&f.Products).Error; err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
