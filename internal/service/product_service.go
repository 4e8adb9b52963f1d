package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/repository"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

// ProductService coordinates owner-scoped product workflows.
type ProductService struct {
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// NewProductService builds the service.
func NewProductService(products repository.ProductRepository, dispatcher events.Dispatcher) *ProductService {
	return &ProductService{products: products, dispatcher: dispatcher}
}

// ProductCreateInput describes product creation payload.
type ProductCreateInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
}

// ProductUpdateInput describes a partial update; nil fields are untouched.
type ProductUpdateInput struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
}

// Create persists a product owned by ownerID.
func (s *ProductService) Create(ctx context.Context, ownerID string, input ProductCreateInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		OwnerID:     ownerID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventProductCreated, product.ID, ownerID, events.ProductCreatedPayload{
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
	})
	return product, nil
}

// List returns all products owned by ownerID, newest first.
func (s *ProductService) List(ctx context.Context, ownerID string) ([]domain.Product, error) {
	return s.products.ListByOwner(ctx, ownerID)
}

// Update applies the partial changes to a product owned by ownerID. A record
// that is absent or owned by someone else is reported as not found.
func (s *ProductService) Update(ctx context.Context, ownerID, id string, input ProductUpdateInput) (*domain.Product, error) {
	changes := repository.ProductUpdate{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
	}
	product, err := s.products.UpdateOwned(ctx, ownerID, id, changes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, err
	}

	s.publish(ctx, events.EventProductUpdated, product.ID, ownerID, events.ProductUpdatedPayload{
		ChangedFields: changedFields(input),
	})
	return product, nil
}

// Delete removes a product owned by ownerID under the same ownership rule.
func (s *ProductService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.products.DeleteOwned(ctx, ownerID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product")
		}
		return err
	}

	s.publish(ctx, events.EventProductDeleted, id, ownerID, events.ProductDeletedPayload{})
	return nil
}

func (s *ProductService) publish(ctx context.Context, eventType events.EventType, productID, ownerID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ProductID: productID,
		OwnerID:   ownerID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func changedFields(input ProductUpdateInput) []string {
	fields := make([]string, 0, 4)
	if input.Name != nil {
		fields = append(fields, "name")
	}
	if input.Description != nil {
		fields = append(fields, "description")
	}
	if input.Category != nil {
		fields = append(fields, "category")
	}
	if input.Price != nil {
		fields = append(fields, "price")
	}
	return fields
}
