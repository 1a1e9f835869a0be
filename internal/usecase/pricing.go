package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dmarquina/eventbooking/internal/adapter/catalog"
	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// ItemRequest is a caller-supplied (option, quantity) pair.
type ItemRequest struct {
	OptionID string
	Quantity int
}

// PricingService resolves catalog prices into itemized totals.
type PricingService struct {
	catalog catalog.Client
}

// NewPricingService constructs PricingService.
func NewPricingService(c catalog.Client) *PricingService {
	return &PricingService{catalog: c}
}

// ResolvePackagePrice returns the currently effective package price.
func (s *PricingService) ResolvePackagePrice(ctx context.Context, packageID string) (*catalog.Price, error) {
	price, err := s.catalog.CurrentPackagePrice(ctx, packageID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, domainErrors.ErrNoActivePrice
		}
		return nil, err
	}
	return price, nil
}

// ResolveCustomItems prices every requested option and computes line and
// order totals. All-or-nothing: a single option without an effective
// price fails the whole resolution.
func (s *PricingService) ResolveCustomItems(ctx context.Context, items []ItemRequest) (*model.Quote, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyItems
	}

	quote := &model.Quote{}
	for _, item := range items {
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 1 {
			return nil, domainErrors.ErrInvalidQuantity
		}

		price, err := s.catalog.CurrentPrice(ctx, item.OptionID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, domainErrors.ErrMissingActivePrice
			}
			return nil, err
		}

		lineTotal := price.Amount.Mul(decimal.NewFromInt(int64(qty)))
		if quote.Currency == "" {
			quote.Currency = price.Currency
		}
		quote.Items = append(quote.Items, model.QuoteItem{
			OptionID:  item.OptionID,
			Quantity:  qty,
			UnitPrice: price.Amount,
			LineTotal: lineTotal,
		})
		quote.Total = quote.Total.Add(lineTotal)
	}

	return quote, nil
}
