// Package db provides database helpers shared by the repositories.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key under which a transaction handle travels.
type txKey struct{}

// WithTx returns a context carrying the given transaction handle. Repositories
// reached with that context run their statements on the transaction.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext returns the transaction from context if one is present,
// otherwise the default handle bound to the context.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
