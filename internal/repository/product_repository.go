package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// ProductUpdate carries the partial field changes for an update. Nil fields
// keep their stored value; owner and id are never part of the update set.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
}

// ProductRepository encapsulates product persistence. Every mutating
// statement matches on owner and id together, so an update or delete against
// another user's record affects zero rows and surfaces as pgx.ErrNoRows.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)
	UpdateOwned(ctx context.Context, ownerID, id string, changes ProductUpdate) (*domain.Product, error)
	DeleteOwned(ctx context.Context, ownerID, id string) error
}

type productRepository struct {
	db DB
}

// NewProductRepository instantiates repository.
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, description, category, price, owner_user_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Category,
		product.Price,
		product.OwnerID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	const query = `
        SELECT id, name, description, category, price, owner_user_id, created_at, updated_at
        FROM products WHERE owner_user_id=$1
        ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) UpdateOwned(ctx context.Context, ownerID, id string, changes ProductUpdate) (*domain.Product, error) {
	const query = `
        UPDATE products SET
            name=COALESCE($1, name),
            description=COALESCE($2, description),
            category=COALESCE($3, category),
            price=COALESCE($4, price),
            updated_at=NOW()
        WHERE id=$5 AND owner_user_id=$6
        RETURNING id, name, description, category, price, owner_user_id, created_at, updated_at`

	var product domain.Product
	if err := r.db.QueryRow(ctx, query,
		changes.Name,
		changes.Description,
		changes.Category,
		changes.Price,
		id,
		ownerID,
	).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&product.OwnerID,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) DeleteOwned(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM products WHERE id=$1 AND owner_user_id=$2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Category,
			&product.Price,
			&product.OwnerID,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}
