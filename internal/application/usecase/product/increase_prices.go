package product

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"golang.org/x/sync/errgroup"
)

type IncreasePricesUseCaseImpl struct {
	Repository product.Repository
	Workers    int
}

func NewIncreasePricesUseCase(repo product.Repository, workers int) *IncreasePricesUseCaseImpl {
	if workers < 1 {
		workers = 1
	}
	return &IncreasePricesUseCaseImpl{Repository: repo, Workers: workers}
}

// Execute reprices every product in memory first, so a rejected price leaves
// the store untouched. The writes are not atomic: a failed update can leave
// earlier ones applied.
func (uc *IncreasePricesUseCaseImpl) Execute(ctx context.Context, input IncreasePricesInput) (ListOutput, error) {
	products, err := uc.load(ctx, input.IDs)
	if err != nil {
		return ListOutput{}, err
	}

	if err := (product.Service{}).IncreasePrice(products, input.Percentage); err != nil {
		return ListOutput{}, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(uc.Workers)
	for _, p := range products {
		g.Go(func() error {
			if err := uc.Repository.Update(gCtx, p); err != nil {
				return fmt.Errorf("update product %s: %w", p.ID(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ListOutput{}, err
	}

	return toListOutput(products), nil
}

func (uc *IncreasePricesUseCaseImpl) load(ctx context.Context, ids []string) ([]*product.Product, error) {
	if len(ids) == 0 {
		return uc.Repository.FindAll(ctx)
	}
	products := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		p, err := uc.Repository.Find(ctx, id)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
