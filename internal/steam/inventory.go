package steam

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"go.uber.org/zap"
)

const inventoryPageSize = 2000

var exteriors = []string{
	"Factory New",
	"Minimal Wear",
	"Field-Tested",
	"Well-Worn",
	"Battle-Scarred",
}

// InventorySource pages through the public inventory endpoint and joins
// asset records against shared description metadata.
type InventorySource struct {
	cli *Client
	log *zap.Logger
}

func NewInventorySource(cli *Client, log *zap.Logger) *InventorySource {
	return &InventorySource{cli: cli, log: log}
}

type inventoryAsset struct {
	AssetID    string `json:"assetid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Amount     string `json:"amount"`
}

type inventoryTag struct {
	Category          string `json:"category"`
	InternalName      string `json:"internal_name"`
	LocalizedTagName  string `json:"localized_tag_name"`
	LocalizedCategory string `json:"localized_category_name"`
}

type inventoryDescription struct {
	ClassID        string         `json:"classid"`
	InstanceID     string         `json:"instanceid"`
	Name           string         `json:"name"`
	MarketName     string         `json:"market_name"`
	MarketHashName string         `json:"market_hash_name"`
	Tradable       int            `json:"tradable"`
	Marketable     int            `json:"marketable"`
	Commodity      int            `json:"commodity"`
	Type           string         `json:"type"`
	IconURL        string         `json:"icon_url"`
	IconURLLarge   string         `json:"icon_url_large"`
	Tags           []inventoryTag `json:"tags"`
}

type inventoryPage struct {
	Assets              []inventoryAsset       `json:"assets"`
	Descriptions        []inventoryDescription `json:"descriptions"`
	TotalInventoryCount int                    `json:"total_inventory_count"`
	MoreItems           int                    `json:"more_items"`
	LastAssetID         string                 `json:"last_assetid"`
	Success             int                    `json:"success"`
}

// GetInventory fetches all pages for every requested context and
// concatenates the joined items into one flat list. An inaccessible or
// empty inventory yields ErrNotFound; callers derive the privacy reason
// from the profile's visibility state.
func (s *InventorySource) GetInventory(ctx context.Context, steamID string, appID int, contextIDs []string) (*model.Inventory, error) {
	inv := &model.Inventory{
		SteamID:    steamID,
		AppID:      appID,
		ContextIDs: contextIDs,
		Items:      []model.InventoryItem{},
	}

	for _, contextID := range contextIDs {
		assets, descriptions, err := s.fetchContext(ctx, steamID, appID, contextID)
		if err != nil {
			return nil, err
		}

		items, dropped := joinItems(assets, descriptions)
		inv.Items = append(inv.Items, items...)
		inv.DroppedAssets += dropped
	}

	if len(inv.Items) == 0 {
		return nil, ErrNotFound
	}

	if inv.DroppedAssets > 0 {
		s.log.Debug(
			"dropped assets without descriptions",
			zap.String("steamid", steamID),
			zap.Int("appid", appID),
			zap.Int("dropped", inv.DroppedAssets),
		)
	}

	inv.TotalCount = len(inv.Items)
	return inv, nil
}

func (s *InventorySource) fetchContext(ctx context.Context, steamID string, appID int, contextID string) ([]inventoryAsset, []inventoryDescription, error) {
	var assets []inventoryAsset
	var descriptions []inventoryDescription

	endpoint := CommunityBase + "/inventory/" + url.PathEscape(steamID) +
		"/" + strconv.Itoa(appID) + "/" + url.PathEscape(contextID)

	cursor := ""
	for {
		params := url.Values{}
		params.Set("l", "english")
		params.Set("count", strconv.Itoa(inventoryPageSize))
		if cursor != "" {
			params.Set("start_assetid", cursor)
		}

		page := &inventoryPage{}
		if err := s.cli.GetJSON(ctx, endpoint, params, page); err != nil {
			return nil, nil, ErrNotFound
		}

		if page.Success != 1 || (len(page.Assets) == 0 && len(page.Descriptions) == 0) {
			// The endpoint does not distinguish empty from inaccessible.
			break
		}

		assets = append(assets, page.Assets...)
		descriptions = append(descriptions, page.Descriptions...)

		if page.MoreItems != 1 || page.LastAssetID == "" {
			break
		}
		cursor = page.LastAssetID
	}

	return assets, descriptions, nil
}

// joinItems joins assets against descriptions on classid_instanceid.
// Assets without a matching description are dropped; the dropped count
// is reported for diagnostics.
func joinItems(assets []inventoryAsset, descriptions []inventoryDescription) ([]model.InventoryItem, int) {
	lookup := make(map[string]inventoryDescription, len(descriptions))
	for _, d := range descriptions {
		lookup[d.ClassID+"_"+d.InstanceID] = d
	}

	items := make([]model.InventoryItem, 0, len(assets))
	dropped := 0
	for _, a := range assets {
		d, ok := lookup[a.ClassID+"_"+a.InstanceID]
		if !ok {
			dropped++
			continue
		}

		amount, _ := strconv.Atoi(a.Amount)
		items = append(
			items, model.InventoryItem{
				AssetID:        a.AssetID,
				ClassID:        a.ClassID,
				InstanceID:     a.InstanceID,
				Amount:         amount,
				Name:           d.Name,
				MarketName:     d.MarketName,
				MarketHashName: d.MarketHashName,
				Tradable:       d.Tradable == 1,
				Marketable:     d.Marketable == 1,
				Commodity:      d.Commodity == 1,
				Type:           d.Type,
				IconURL:        economyImageURL(d.IconURL),
				IconURLLarge:   economyImageURL(d.IconURLLarge),
				Exterior:       ExtractExterior(d.Name),
				Rarity:         extractRarity(d.Tags),
			},
		)
	}
	return items, dropped
}

// ExtractExterior scans name for one of the five known parenthesized
// exterior labels. The match is exact, parentheses included.
func ExtractExterior(name string) string {
	for _, ex := range exteriors {
		if strings.Contains(name, "("+ex+")") {
			return ex
		}
	}
	return ""
}

func extractRarity(tags []inventoryTag) string {
	for _, t := range tags {
		if t.Category != "Rarity" {
			continue
		}
		if t.LocalizedTagName != "" {
			return t.LocalizedTagName
		}
		return t.InternalName
	}
	return ""
}

func economyImageURL(fragment string) string {
	if fragment == "" {
		return ""
	}
	if strings.HasPrefix(fragment, "http") {
		return fragment
	}
	return ImageCDNBase + fragment
}
