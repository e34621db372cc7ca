package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the storage layer for SafariQ records.
// One instance is constructed per process and shared by the services.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx runs fn inside a database transaction. The Repository handed to fn
// is bound to the transaction; fn must not use the outer Repository.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// DB exposes the underlying handle for health checks and migrations
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Ping checks that the database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
