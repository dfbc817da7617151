package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// queryer is the part of *sqlx.DB and *sqlx.Tx the repositories use.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// pick returns the request transaction when there is one and the pool otherwise.
func pick(ctx context.Context, db *sqlx.DB, txGetter TxGetter) queryer {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// oneLine collapses a multi-line query for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
