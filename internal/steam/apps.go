package steam

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"go.uber.org/zap"
)

const findAppLimit = 20

// marketApps are the curated apps this facade supports, with their
// market availability.
var marketApps = []model.AppInfo{
	{AppID: 730, Name: "Counter-Strike 2", HasMarket: true},
	{AppID: 570, Name: "Dota 2", HasMarket: true},
	{AppID: 440, Name: "Team Fortress 2", HasMarket: true},
	{AppID: 252490, Name: "Rust", HasMarket: true},
	{AppID: 753, Name: "Steam", HasMarket: true},
}

// AppSource serves storefront app lookups and Web API status checks.
type AppSource struct {
	cli *Client
	log *zap.Logger
}

func NewAppSource(cli *Client, log *zap.Logger) *AppSource {
	return &AppSource{cli: cli, log: log}
}

type appDetailsEntry struct {
	Success bool `json:"success"`
	Data    struct {
		Type        string   `json:"type"`
		Name        string   `json:"name"`
		HeaderImage string   `json:"header_image"`
		Developers  []string `json:"developers"`
	} `json:"data"`
}

func (s *AppSource) GetApp(ctx context.Context, appID int) (*model.AppInfo, error) {
	params := url.Values{}
	params.Set("appids", strconv.Itoa(appID))

	res := map[string]appDetailsEntry{}
	if err := s.cli.GetJSON(ctx, StoreAPIBase+"/appdetails", params, &res); err != nil {
		return nil, ErrNotFound
	}

	entry, ok := res[strconv.Itoa(appID)]
	if !ok || !entry.Success {
		return nil, ErrNotFound
	}

	return &model.AppInfo{
		AppID:       appID,
		Name:        entry.Data.Name,
		Type:        entry.Data.Type,
		HeaderImage: entry.Data.HeaderImage,
		Developers:  entry.Data.Developers,
		HasMarket:   hasMarket(appID),
	}, nil
}

type appListResponse struct {
	AppList struct {
		Apps []struct {
			AppID int    `json:"appid"`
			Name  string `json:"name"`
		} `json:"apps"`
	} `json:"applist"`
}

// FindApp filters the full app list by case-insensitive substring
// match, capped at findAppLimit results.
func (s *AppSource) FindApp(ctx context.Context, name string) ([]model.AppInfo, error) {
	res := &appListResponse{}
	err := s.cli.GetJSON(ctx, WebAPIBase+"/ISteamApps/GetAppList/v2/", nil, res)
	if err != nil {
		return nil, ErrNotFound
	}

	needle := strings.ToLower(name)
	matches := make([]model.AppInfo, 0, findAppLimit)
	for _, app := range res.AppList.Apps {
		if app.AppID <= 0 || app.Name == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(app.Name), needle) {
			continue
		}

		matches = append(
			matches, model.AppInfo{
				AppID:     app.AppID,
				Name:      app.Name,
				HasMarket: hasMarket(app.AppID),
			},
		)
		if len(matches) >= findAppLimit {
			break
		}
	}

	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches, nil
}

func (s *AppSource) SupportedApps() []model.AppInfo {
	apps := make([]model.AppInfo, len(marketApps))
	copy(apps, marketApps)
	return apps
}

type serverInfoResponse struct {
	ServerTime       int64  `json:"servertime"`
	ServerTimeString string `json:"servertimestring"`
}

// Status reports whether the Steam Web API is reachable.
func (s *AppSource) Status(ctx context.Context) (*model.SteamStatus, error) {
	res := &serverInfoResponse{}
	err := s.cli.GetJSON(ctx, WebAPIBase+"/ISteamWebAPIUtil/GetServerInfo/v0001/", nil, res)
	if err != nil {
		return &model.SteamStatus{Online: false}, nil
	}

	return &model.SteamStatus{
		Online:           true,
		ServerTime:       res.ServerTime,
		ServerTimeString: res.ServerTimeString,
	}, nil
}

func hasMarket(appID int) bool {
	for _, app := range marketApps {
		if app.AppID == appID {
			return app.HasMarket
		}
	}
	return false
}
