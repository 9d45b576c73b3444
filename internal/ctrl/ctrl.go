package ctrl

import (
	"context"
	"errors"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")
var ErrAPIKeyRequired = errors.New("steam api key required for this endpoint")

type Resolver interface {
	Resolve(ctx context.Context, identifier string) (string, error)
}

type ProfileSource interface {
	GetProfile(ctx context.Context, steamID string) (*model.SteamProfile, error)
	GetFriends(ctx context.Context, steamID string) ([]model.FriendEntry, error)
	GetRecentGames(ctx context.Context, steamID string) ([]model.RecentGame, error)
}

type InventorySource interface {
	GetInventory(ctx context.Context, steamID string, appID int, contextIDs []string) (*model.Inventory, error)
}

type MarketProvider interface {
	GetPrice(ctx context.Context, hashName string, appID int) (*model.PriceQuote, error)
	Search(ctx context.Context, query string, appID, count int) ([]model.MarketItem, error)
	Popular(ctx context.Context, appID, count int) ([]model.MarketItem, error)
}

type AppSource interface {
	GetApp(ctx context.Context, appID int) (*model.AppInfo, error)
	FindApp(ctx context.Context, name string) ([]model.AppInfo, error)
	SupportedApps() []model.AppInfo
	Status(ctx context.Context) (*model.SteamStatus, error)
}

type AppCtrl interface {
	GetProfile(ctx context.Context, identifier string) (*model.SteamProfile, error)
	GetFriends(ctx context.Context, identifier string) ([]model.FriendEntry, error)
	GetRecentGames(ctx context.Context, identifier string) ([]model.RecentGame, error)
	GetInventory(ctx context.Context, identifier string, appID int, contextIDs []string) (*model.Inventory, error)
	GetItemPrice(ctx context.Context, hashName string, appID int) (*model.PriceQuote, error)
	SearchItems(ctx context.Context, query string, appID, count int) ([]model.MarketItem, error)
	PopularItems(ctx context.Context, appID, count int) ([]model.MarketItem, error)
	GetApp(ctx context.Context, appID int) (*model.AppInfo, error)
	FindApp(ctx context.Context, name string) ([]model.AppInfo, error)
	SupportedApps(ctx context.Context) []model.AppInfo
	SteamStatus(ctx context.Context) (*model.SteamStatus, error)
}

type Controller struct {
	resolver  Resolver
	profile   ProfileSource
	inventory InventorySource
	market    MarketProvider
	apps      AppSource
	log       *zap.Logger
}

func New(
	resolver Resolver,
	profile ProfileSource,
	inventory InventorySource,
	market MarketProvider,
	apps AppSource,
	log *zap.Logger,
) *Controller {
	return &Controller{
		resolver:  resolver,
		profile:   profile,
		inventory: inventory,
		market:    market,
		apps:      apps,
		log:       log,
	}
}
