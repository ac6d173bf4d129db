package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// inTx runs fn inside a transaction, committing when fn succeeds and rolling
// back otherwise.
func (c *Conn) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
