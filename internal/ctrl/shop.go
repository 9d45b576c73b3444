package ctrl

import (
	"context"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"github.com/opentracing/opentracing-go"
)

func (c *Controller) GetApp(ctx context.Context, appID int) (*model.AppInfo, error) {
	const op = "shop.GetApp.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.apps.GetApp(ctx, appID)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}

func (c *Controller) FindApp(ctx context.Context, name string) ([]model.AppInfo, error) {
	const op = "shop.FindApp.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.apps.FindApp(ctx, name)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}

func (c *Controller) SupportedApps(ctx context.Context) []model.AppInfo {
	const op = "shop.SupportedApps.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.apps.SupportedApps()
}

func (c *Controller) SteamStatus(ctx context.Context) (*model.SteamStatus, error) {
	const op = "shop.SteamStatus.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.apps.Status(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}
