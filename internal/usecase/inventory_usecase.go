package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/filter"
	"amsi_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidProductSKU   = errors.New("invalid product sku")
	ErrInvalidStockChange  = errors.New("stock change must be non-zero")
	ErrStockBelowZero      = errors.New("adjustment would take stock below zero")
	ErrCorruptStockHistory = errors.New("stock history does not sum to stock level")
)

// IInventoryUseCase exposes product and stock-ledger operations.
//
// Stock is a running sum over the append-only ledger. The use case computes
// every entry's resulting level itself; caller-declared levels are ignored.
type IInventoryUseCase interface {
	Create(ctx context.Context, draft entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context, search, category string, bucket filter.StockBucket) ([]entities.Product, error)
	AdjustStock(ctx context.Context, id string, change int, reason, actor string) (entities.Product, error)
}

type InventoryUseCase struct {
	repo interfaces.IProductRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

func (u *InventoryUseCase) Create(ctx context.Context, draft entities.Product) (entities.Product, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.SKU = strings.TrimSpace(draft.SKU)
	if draft.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if draft.SKU == "" {
		return entities.Product{}, ErrInvalidProductSKU
	}
	if draft.StockLevel < 0 {
		return entities.Product{}, ErrStockBelowZero
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.StockHistory = nil
	if draft.StockLevel > 0 {
		draft.StockHistory = []entities.StockEntry{{
			Date:       now,
			Change:     draft.StockLevel,
			StockLevel: draft.StockLevel,
			Reason:     "Initial stock",
			Actor:      "system",
		}}
	}
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Product{}, err
	}
	log.Printf("[inventory][usecase] created product_id=%s sku=%s stock=%d", created.ID, created.SKU, created.StockLevel)
	return created, nil
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *InventoryUseCase) List(ctx context.Context, search, category string, bucket filter.StockBucket) ([]entities.Product, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if filter.ProductMatches(p, search, category, bucket) {
			out = append(out, p)
		}
	}
	return out, nil
}

// AdjustStock appends one signed ledger entry and recomputes the level.
// The stored level is re-verified against the ledger before the write so a
// corrupted record is caught rather than compounded.
func (u *InventoryUseCase) AdjustStock(ctx context.Context, id string, change int, reason, actor string) (entities.Product, error) {
	if change == 0 {
		return entities.Product{}, ErrInvalidStockChange
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	if lvl := StockLevelFromHistory(p.StockHistory); lvl != p.StockLevel {
		return entities.Product{}, fmt.Errorf("%w: product %s has level %d, ledger sums to %d", ErrCorruptStockHistory, p.ID, p.StockLevel, lvl)
	}

	newLevel := p.StockLevel + change
	if newLevel < 0 {
		return entities.Product{}, ErrStockBelowZero
	}

	now := time.Now().UTC()
	p.StockHistory = append(p.StockHistory, entities.StockEntry{
		Date:       now,
		Change:     change,
		StockLevel: newLevel,
		Reason:     strings.TrimSpace(reason),
		Actor:      actor,
	})
	p.StockLevel = newLevel
	p.UpdatedAt = now

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	log.Printf("[inventory][usecase] stock adjusted product_id=%s change=%+d level=%d actor=%s", saved.ID, change, saved.StockLevel, actor)
	return saved, nil
}

// StockLevelFromHistory folds the chronological ledger into the current
// level.
func StockLevelFromHistory(history []entities.StockEntry) int {
	level := 0
	for _, e := range history {
		level += e.Change
	}
	return level
}
