package mocks

import (
	"context"

	"backoffice/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type txRunnerImpl struct {
}

// WithinTx implements postgres.TxRunner without a live database. The callback
// receives a nil transaction; repositories under test are mocked and never
// dereference it.
func (t *txRunnerImpl) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxRunner() postgres.TxRunner {
	return &txRunnerImpl{}
}
