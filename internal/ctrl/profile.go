package ctrl

import (
	"context"
	"errors"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/steam"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// mapErr rewrites source-level sentinels into controller sentinels so
// handlers only depend on this package's error taxonomy.
func mapErr(err error) error {
	switch {
	case errors.Is(err, steam.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, steam.ErrAPIKeyRequired):
		return ErrAPIKeyRequired
	case errors.Is(err, steam.ErrUpstream), errors.Is(err, steam.ErrDecode):
		// Upstream failures surface as not-found on read endpoints.
		return ErrNotFound
	default:
		return err
	}
}

func (c *Controller) GetProfile(ctx context.Context, identifier string) (*model.SteamProfile, error) {
	const op = "steam.GetProfile.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	steamID, err := c.resolver.Resolve(ctx, identifier)
	if err != nil {
		c.log.Debug(
			"failed to resolve identifier",
			zap.String("op", op), zap.String("identifier", identifier), zap.Error(err),
		)
		return nil, mapErr(err)
	}

	res, err := c.profile.GetProfile(ctx, steamID)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}

func (c *Controller) GetFriends(ctx context.Context, identifier string) ([]model.FriendEntry, error) {
	const op = "steam.GetFriends.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	steamID, err := c.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, mapErr(err)
	}

	res, err := c.profile.GetFriends(ctx, steamID)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}

func (c *Controller) GetRecentGames(ctx context.Context, identifier string) ([]model.RecentGame, error) {
	const op = "steam.GetRecentGames.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	steamID, err := c.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, mapErr(err)
	}

	res, err := c.profile.GetRecentGames(ctx, steamID)
	if err != nil {
		return nil, mapErr(err)
	}

	return res, nil
}
