package ctrl

import (
	"context"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"github.com/opentracing/opentracing-go"
)

func (c *Controller) GetItemPrice(ctx context.Context, hashName string, appID int) (*model.PriceQuote, error) {
	const op = "market.GetItemPrice.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.market.GetPrice(ctx, hashName, appID)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}

func (c *Controller) SearchItems(ctx context.Context, query string, appID, count int) ([]model.MarketItem, error) {
	const op = "market.SearchItems.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.market.Search(ctx, query, appID, count)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}

func (c *Controller) PopularItems(ctx context.Context, appID, count int) ([]model.MarketItem, error) {
	const op = "market.PopularItems.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.market.Popular(ctx, appID, count)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}
