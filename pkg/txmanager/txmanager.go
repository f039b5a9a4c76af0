// Package txmanager runs units of work either inside SQL transactions or,
// for in-process storage, under a mutex.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lib/pq"

	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
)

// ErrTransaction оборачивает ошибки начала и фиксации транзакции
var ErrTransaction = errors.New("txmanager: transaction error")

const (
	maxSerializationRetries = 3
	pqSerializationFailure  = "40001"
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер SQL-транзакций
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создаёт менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции READ COMMITTED
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE.
// При конфликте сериализации (40001) транзакция повторяется.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxSerializationRetries; attempt++ {
		err = m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return strings.Contains(err.Error(), "could not serialize access")
}

// LocalManager сериализует единицы работы мьютексом.
// Используется с хранилищами в памяти и в файле.
type LocalManager struct {
	mu sync.Mutex
}

// NewLocalManager создаёт локальный менеджер
func NewLocalManager() *LocalManager {
	return &LocalManager{}
}

type localTxKey struct{}

func (m *LocalManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn под мьютексом. Вложенный вызов того же менеджера выполняется без повторной блокировки.
func (m *LocalManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if owner, ok := ctx.Value(localTxKey{}).(*LocalManager); ok && owner == m {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(context.WithValue(ctx, localTxKey{}, m))
}
