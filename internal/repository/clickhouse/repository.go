package clickhouse

import (
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/lumendao/treasury-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

func toStrings(accounts []model.Account) []string {
	values := make([]string, len(accounts))
	for i, account := range accounts {
		values[i] = string(account)
	}
	return values
}

func toAccounts(values []string) []model.Account {
	accounts := make([]model.Account, len(values))
	for i, value := range values {
		accounts[i] = model.Account(value)
	}
	return accounts
}
