package market

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/steam"
	"go.uber.org/zap"
)

const MaxSearchCount = 50
const MaxPopularCount = 100
const DefaultSearchCount = 10

// Provider wraps the community market price/search endpoints and
// post-processes results: price strings parsed to cents, image
// fragments resolved to absolute CDN URLs, counts clamped.
type Provider struct {
	cli *steam.Client
	log *zap.Logger
}

func New(cli *steam.Client, log *zap.Logger) *Provider {
	return &Provider{cli: cli, log: log}
}

type priceOverviewResponse struct {
	Success     bool   `json:"success"`
	LowestPrice string `json:"lowest_price"`
	MedianPrice string `json:"median_price"`
	Volume      string `json:"volume"`
}

func (p *Provider) GetPrice(ctx context.Context, hashName string, appID int) (*model.PriceQuote, error) {
	params := url.Values{}
	params.Set("appid", strconv.Itoa(appID))
	params.Set("currency", "1")
	params.Set("market_hash_name", hashName)

	res := &priceOverviewResponse{}
	err := p.cli.GetJSON(ctx, steam.CommunityBase+"/market/priceoverview/", params, res)
	if err != nil {
		return nil, steam.ErrNotFound
	}
	if !res.Success {
		return nil, steam.ErrNotFound
	}

	quote := &model.PriceQuote{
		MarketHashName:  hashName,
		AppID:           appID,
		Currency:        "USD",
		LowestPrice:     parsePriceCents(res.LowestPrice),
		LowestPriceText: res.LowestPrice,
		MedianPrice:     parsePriceCents(res.MedianPrice),
		MedianPriceText: res.MedianPrice,
		Volume:          parseVolume(res.Volume),
		ImageURL:        p.lookupImage(ctx, hashName, appID),
	}
	return quote, nil
}

type searchResponse struct {
	Success bool `json:"success"`
	Results []struct {
		Name             string `json:"name"`
		HashName         string `json:"hash_name"`
		SellListings     int    `json:"sell_listings"`
		SellPrice        int    `json:"sell_price"`
		SellPriceText    string `json:"sell_price_text"`
		AssetDescription struct {
			IconURL string `json:"icon_url"`
		} `json:"asset_description"`
	} `json:"results"`
}

func (p *Provider) Search(ctx context.Context, query string, appID, count int) ([]model.MarketItem, error) {
	return p.search(ctx, query, appID, clamp(count, MaxSearchCount), "")
}

// Popular lists the most traded items for an app: a blank search
// ordered by the market's popularity column.
func (p *Provider) Popular(ctx context.Context, appID, count int) ([]model.MarketItem, error) {
	return p.search(ctx, "", appID, clamp(count, MaxPopularCount), "popular")
}

func (p *Provider) search(ctx context.Context, query string, appID, count int, sortColumn string) ([]model.MarketItem, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("appid", strconv.Itoa(appID))
	params.Set("count", strconv.Itoa(count))
	params.Set("norender", "1")
	if sortColumn != "" {
		params.Set("sort_column", sortColumn)
		params.Set("sort_dir", "desc")
	}

	res := &searchResponse{}
	err := p.cli.GetJSON(ctx, steam.CommunityBase+"/market/search/render/", params, res)
	if err != nil {
		return nil, steam.ErrNotFound
	}
	if !res.Success || len(res.Results) == 0 {
		return nil, steam.ErrNotFound
	}

	if len(res.Results) > count {
		res.Results = res.Results[:count]
	}

	items := make([]model.MarketItem, 0, len(res.Results))
	for _, r := range res.Results {
		items = append(
			items, model.MarketItem{
				Name:          r.Name,
				HashName:      r.HashName,
				AppID:         appID,
				SellPrice:     r.SellPrice,
				SellPriceText: r.SellPriceText,
				SellListings:  r.SellListings,
				ImageURL:      BuildImageURL(r.AssetDescription.IconURL),
			},
		)
	}
	return items, nil
}

// lookupImage recovers an icon for a price quote via a best-effort
// one-item search; the priceoverview endpoint carries no images.
func (p *Provider) lookupImage(ctx context.Context, hashName string, appID int) string {
	items, err := p.search(ctx, hashName, appID, 1, "")
	if err != nil || len(items) == 0 {
		p.log.Debug("no image found for item", zap.String("hash_name", hashName))
		return ""
	}
	return items[0].ImageURL
}

// BuildImageURL resolves an economy image fragment to an absolute URL.
// Fragments that already carry a scheme pass through unchanged.
func BuildImageURL(fragment string) string {
	if fragment == "" {
		return ""
	}
	if strings.HasPrefix(fragment, "http") {
		return fragment
	}
	return steam.ImageCDNBase + fragment
}

// parsePriceCents converts a formatted price like "$1,234.56" to
// integer cents. Unparseable input yields 0.
func parsePriceCents(text string) int {
	cleaned := strings.Map(
		func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, text,
	)
	if cleaned == "" {
		return 0
	}

	whole, frac, _ := strings.Cut(cleaned, ".")
	cents := 0
	if n, err := strconv.Atoi(whole); err == nil {
		cents = n * 100
	}
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		if n, err := strconv.Atoi(frac); err == nil {
			cents += n
		}
	}
	return cents
}

func parseVolume(text string) int {
	cleaned := strings.ReplaceAll(text, ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

func clamp(count, max int) int {
	if count <= 0 {
		return DefaultSearchCount
	}
	if count > max {
		return max
	}
	return count
}
