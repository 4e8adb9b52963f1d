package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/repository"
)

func newProductRepo(t *testing.T) (repository.ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return repository.NewProductRepository(mock), mock
}

const productColumnsQuery = "SELECT id, name, description, category, price, owner_user_id, created_at, updated_at"

func TestProductRepositoryCreate(t *testing.T) {
	repo, mock := newProductRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Widget", "A widget", "Tools", 19.99, "owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("product-1", now, now))

	product := &domain.Product{
		Name:        "Widget",
		Description: "A widget",
		Category:    "Tools",
		Price:       19.99,
		OwnerID:     "owner-1",
	}
	require.NoError(t, repo.Create(context.Background(), product))

	assert.Equal(t, "product-1", product.ID)
	assert.Equal(t, now, product.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryListByOwner(t *testing.T) {
	repo, mock := newProductRepo(t)
	newer := time.Now()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(productColumnsQuery).
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "category", "price", "owner_user_id", "created_at", "updated_at"}).
			AddRow("product-2", "Gadget", "A gadget", "Tools", 5.0, "owner-1", newer, newer).
			AddRow("product-1", "Widget", "A widget", "Tools", 19.99, "owner-1", older, older))

	products, err := repo.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "product-2", products[0].ID)
	assert.Equal(t, "product-1", products[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryUpdateOwned(t *testing.T) {
	repo, mock := newProductRepo(t)
	now := time.Now()
	price := 25.0

	mock.ExpectQuery("UPDATE products SET").
		WithArgs((*string)(nil), (*string)(nil), (*string)(nil), &price, "product-1", "owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "category", "price", "owner_user_id", "created_at", "updated_at"}).
			AddRow("product-1", "Widget", "A widget", "Tools", 25.0, "owner-1", now, now))

	product, err := repo.UpdateOwned(context.Background(), "owner-1", "product-1", repository.ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 25.0, product.Price)
	assert.Equal(t, "Widget", product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryUpdateOwnedForeignOwner(t *testing.T) {
	repo, mock := newProductRepo(t)
	price := 25.0

	mock.ExpectQuery("UPDATE products SET").
		WithArgs((*string)(nil), (*string)(nil), (*string)(nil), &price, "product-1", "owner-b").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateOwned(context.Background(), "owner-b", "product-1", repository.ProductUpdate{Price: &price})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryDeleteOwned(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newProductRepo(t)

		mock.ExpectExec("DELETE FROM products").
			WithArgs("product-1", "owner-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteOwned(context.Background(), "owner-1", "product-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows surfaces as ErrNoRows", func(t *testing.T) {
		repo, mock := newProductRepo(t)

		mock.ExpectExec("DELETE FROM products").
			WithArgs("product-1", "owner-b").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteOwned(context.Background(), "owner-b", "product-1")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
