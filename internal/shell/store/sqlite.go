package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// Executor Interface - Shared by DB and Transaction
// =============================================================================

// executor abstracts database operations that can be performed on both
// a database connection and a transaction.
type executor interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
// dsn is a file path or ":memory:"; foreign keys are always enabled.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", withForeignKeys(dsn))
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to open database", ErrConnectionFailed)
	}

	// SQLite allows a single writer, and every connection to ":memory:" is
	// a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to ping database", ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return NewStoreError("Ping", "", "", err.Error(), ErrConnectionFailed)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Customer Operations
// =============================================================================
//
// Aggregate writes (customer and address, order and item, user and role) run
// in their own transaction so a failure never leaves half a record behind.

func (s *SQLiteStore) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	return s.WithTx(ctx, func(tx Store) error { return tx.CreateCustomer(ctx, customer) })
}

func (s *SQLiteStore) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return getCustomer(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return s.WithTx(ctx, func(tx Store) error { return tx.UpdateCustomer(ctx, customer) })
}

func (s *SQLiteStore) DeleteCustomer(ctx context.Context, id int64) error {
	return deleteCustomer(ctx, s.db, id)
}

func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return listCustomers(ctx, s.db)
}

// =============================================================================
// Product Operations
// =============================================================================

func (s *SQLiteStore) CreateProduct(ctx context.Context, product *domain.Product) error {
	return createProduct(ctx, s.db, product)
}

func (s *SQLiteStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return getProduct(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return updateProduct(ctx, s.db, product)
}

func (s *SQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	return deleteProduct(ctx, s.db, id)
}

func (s *SQLiteStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return listProducts(ctx, s.db)
}

// =============================================================================
// Order Operations
// =============================================================================

func (s *SQLiteStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	return s.WithTx(ctx, func(tx Store) error { return tx.CreateOrder(ctx, order) })
}

func (s *SQLiteStore) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateOrder(ctx context.Context, order *domain.Order) error {
	return s.WithTx(ctx, func(tx Store) error { return tx.UpdateOrder(ctx, order) })
}

func (s *SQLiteStore) DeleteOrder(ctx context.Context, id int64) error {
	return deleteOrder(ctx, s.db, id)
}

func (s *SQLiteStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return listOrders(ctx, s.db)
}

// =============================================================================
// User Operations
// =============================================================================

func (s *SQLiteStore) CreateUser(ctx context.Context, user *domain.User) error {
	return s.WithTx(ctx, func(tx Store) error { return tx.CreateUser(ctx, user) })
}

func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return getUser(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateUser(ctx context.Context, user *domain.User) error {
	return s.WithTx(ctx, func(tx Store) error { return tx.UpdateUser(ctx, user) })
}

func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	return deleteUser(ctx, s.db, id)
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	return listUsers(ctx, s.db)
}

// =============================================================================
// Transaction Support
// =============================================================================

func (s *SQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return NewStoreError("WithTx", "", "", "failed to begin transaction", ErrTxFailed)
	}

	txS := &txSQLiteStore{tx: tx}

	if err := fn(txS); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return NewStoreError("WithTx", "", "", fmt.Sprintf("rollback failed after error: %v", err), ErrTxFailed)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return NewStoreError("WithTx", "", "", "failed to commit transaction", ErrTxFailed)
	}

	return nil
}

// =============================================================================
// Transaction Store
// =============================================================================

// txSQLiteStore implements Store within a transaction.
type txSQLiteStore struct {
	tx *sqlx.Tx
}

func (s *txSQLiteStore) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	return createCustomer(ctx, s.tx, customer)
}

func (s *txSQLiteStore) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return getCustomer(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return updateCustomer(ctx, s.tx, customer)
}

func (s *txSQLiteStore) DeleteCustomer(ctx context.Context, id int64) error {
	return deleteCustomer(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return listCustomers(ctx, s.tx)
}

func (s *txSQLiteStore) CreateProduct(ctx context.Context, product *domain.Product) error {
	return createProduct(ctx, s.tx, product)
}

func (s *txSQLiteStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return getProduct(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return updateProduct(ctx, s.tx, product)
}

func (s *txSQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	return deleteProduct(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return listProducts(ctx, s.tx)
}

func (s *txSQLiteStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	return createOrder(ctx, s.tx, order)
}

func (s *txSQLiteStore) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateOrder(ctx context.Context, order *domain.Order) error {
	return updateOrder(ctx, s.tx, order)
}

func (s *txSQLiteStore) DeleteOrder(ctx context.Context, id int64) error {
	return deleteOrder(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return listOrders(ctx, s.tx)
}

func (s *txSQLiteStore) CreateUser(ctx context.Context, user *domain.User) error {
	return createUser(ctx, s.tx, user)
}

func (s *txSQLiteStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return getUser(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateUser(ctx context.Context, user *domain.User) error {
	return updateUser(ctx, s.tx, user)
}

func (s *txSQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	return deleteUser(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	return listUsers(ctx, s.tx)
}

func (s *txSQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	// Already in a transaction, just run the function
	return fn(s)
}

func (s *txSQLiteStore) Ping(ctx context.Context) error {
	return nil
}

func (s *txSQLiteStore) Close() error {
	// No-op for tx store
	return nil
}

// =============================================================================
// Shared Helpers
// =============================================================================

// deleteByID deletes the row with id from table. Owned rows go with it
// through ON DELETE CASCADE.
func deleteByID(ctx context.Context, exec executor, op, entity, table string, id int64) error {
	result, err := exec.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return NewStoreError(op, entity, idString(id), err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError(op, entity, idString(id), entity+" not found", ErrNotFound)
	}

	return nil
}

// getOne runs query into dest, mapping no rows to ErrNotFound.
func getOne(ctx context.Context, exec executor, dest any, op, entity, query string, id int64) error {
	err := exec.GetContext(ctx, dest, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewStoreError(op, entity, idString(id), entity+" not found", ErrNotFound)
		}
		return NewStoreError(op, entity, idString(id), err.Error(), err)
	}
	return nil
}

// updatedRow maps a zero-row UPDATE to ErrNotFound.
func updatedRow(result sql.Result, op, entity string, id int64) error {
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError(op, entity, idString(id), entity+" not found", ErrNotFound)
	}
	return nil
}
