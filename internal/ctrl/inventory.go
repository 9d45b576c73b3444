package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// GetInventory resolves the identifier and fetches the inventory. When
// the inventory is inaccessible, the profile's visibility state is
// consulted to attach a privacy reason: the inventory endpoint itself
// cannot distinguish empty from private.
func (c *Controller) GetInventory(ctx context.Context, identifier string, appID int, contextIDs []string) (*model.Inventory, error) {
	const op = "steam.GetInventory.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	steamID, err := c.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, mapErr(err)
	}

	res, err := c.inventory.GetInventory(ctx, steamID, appID, contextIDs)
	if err != nil {
		mapped := mapErr(err)
		if !errors.Is(mapped, ErrNotFound) {
			return nil, mapped
		}

		reason := c.inventoryFailureReason(ctx, steamID)
		c.log.Debug(
			"inventory not accessible",
			zap.String("op", op),
			zap.String("steamid", steamID),
			zap.Int("appid", appID),
			zap.String("reason", reason),
		)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, reason)
	}

	return res, nil
}

func (c *Controller) inventoryFailureReason(ctx context.Context, steamID string) string {
	profile, err := c.profile.GetProfile(ctx, steamID)
	if err != nil {
		return "inventory is empty or not accessible"
	}

	switch profile.Visibility {
	case model.VisibilityPrivate:
		return "profile is private"
	case model.VisibilityFriendsOnly:
		return "inventory is visible to friends only"
	default:
		return "inventory is empty or not accessible"
	}
}
