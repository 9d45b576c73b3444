package steam

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"sync"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"go.uber.org/zap"
)

// ProfileSource fetches and aggregates public profile data. Two
// variants exist: apiSource uses the authenticated Web API,
// communitySource falls back to the public XML profile page. The
// variant is chosen once at construction based on key presence.
type ProfileSource interface {
	GetProfile(ctx context.Context, steamID string) (*model.SteamProfile, error)
	GetFriends(ctx context.Context, steamID string) ([]model.FriendEntry, error)
	GetRecentGames(ctx context.Context, steamID string) ([]model.RecentGame, error)
}

func NewProfileSource(cli *Client, apiKey string, log *zap.Logger) ProfileSource {
	if apiKey == "" {
		return &communitySource{cli: cli, log: log}
	}
	return &apiSource{cli: cli, apiKey: apiKey, log: log}
}

type apiSource struct {
	cli    *Client
	apiKey string
	log    *zap.Logger
}

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamID                  string `json:"steamid"`
			CommunityVisibilityState int    `json:"communityvisibilitystate"`
			PersonaName              string `json:"personaname"`
			RealName                 string `json:"realname"`
			ProfileURL               string `json:"profileurl"`
			Avatar                   string `json:"avatar"`
			AvatarMedium             string `json:"avatarmedium"`
			AvatarFull               string `json:"avatarfull"`
			PersonaState             int    `json:"personastate"`
			TimeCreated              int64  `json:"timecreated"`
		} `json:"players"`
	} `json:"response"`
}

type steamLevelResponse struct {
	Response struct {
		PlayerLevel int `json:"player_level"`
	} `json:"response"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int `json:"game_count"`
	} `json:"response"`
}

// GetProfile fans out the summary, level and owned-games calls. The
// summary is mandatory; level and owned games substitute neutral
// defaults on failure.
func (s *apiSource) GetProfile(ctx context.Context, steamID string) (*model.SteamProfile, error) {
	var summary *playerSummariesResponse
	var summaryErr error
	var level, gameCount int

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		res := &playerSummariesResponse{}
		params := url.Values{}
		params.Set("key", s.apiKey)
		params.Set("steamids", steamID)

		summaryErr = s.cli.GetJSON(ctx, WebAPIBase+"/ISteamUser/GetPlayerSummaries/v0002/", params, res)
		summary = res
	}()

	go func() {
		defer wg.Done()
		res := &steamLevelResponse{}
		params := url.Values{}
		params.Set("key", s.apiKey)
		params.Set("steamid", steamID)

		if err := s.cli.GetJSON(ctx, WebAPIBase+"/IPlayerService/GetSteamLevel/v1/", params, res); err != nil {
			s.log.Debug("steam level unavailable", zap.String("steamid", steamID), zap.Error(err))
			return
		}
		level = res.Response.PlayerLevel
	}()

	go func() {
		defer wg.Done()
		res := &ownedGamesResponse{}
		params := url.Values{}
		params.Set("key", s.apiKey)
		params.Set("steamid", steamID)
		params.Set("include_played_free_games", "1")

		if err := s.cli.GetJSON(ctx, WebAPIBase+"/IPlayerService/GetOwnedGames/v1/", params, res); err != nil {
			s.log.Debug("owned games unavailable", zap.String("steamid", steamID), zap.Error(err))
			return
		}
		gameCount = res.Response.GameCount
	}()

	wg.Wait()

	if summaryErr != nil {
		return nil, ErrNotFound
	}
	if len(summary.Response.Players) == 0 {
		return nil, ErrNotFound
	}

	p := summary.Response.Players[0]
	return &model.SteamProfile{
		SteamID:      p.SteamID,
		PersonaName:  p.PersonaName,
		RealName:     p.RealName,
		ProfileURL:   p.ProfileURL,
		Avatar:       p.Avatar,
		AvatarMedium: p.AvatarMedium,
		AvatarFull:   p.AvatarFull,
		PersonaState: model.PersonaStateName(p.PersonaState),
		Visibility:   p.CommunityVisibilityState,
		TimeCreated:  p.TimeCreated,
		Level:        level,
		GameCount:    gameCount,
	}, nil
}

type friendListResponse struct {
	FriendsList struct {
		Friends []struct {
			SteamID      string `json:"steamid"`
			Relationship string `json:"relationship"`
			FriendSince  int64  `json:"friend_since"`
		} `json:"friends"`
	} `json:"friendslist"`
}

func (s *apiSource) GetFriends(ctx context.Context, steamID string) ([]model.FriendEntry, error) {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("steamid", steamID)
	params.Set("relationship", "friend")

	res := &friendListResponse{}
	err := s.cli.GetJSON(ctx, WebAPIBase+"/ISteamUser/GetFriendList/v0001/", params, res)
	if err != nil {
		return nil, ErrNotFound
	}

	friends := make([]model.FriendEntry, 0, len(res.FriendsList.Friends))
	for _, f := range res.FriendsList.Friends {
		friends = append(
			friends, model.FriendEntry{
				SteamID:      f.SteamID,
				Relationship: f.Relationship,
				FriendSince:  f.FriendSince,
			},
		)
	}
	return friends, nil
}

type recentGamesResponse struct {
	Response struct {
		Games []struct {
			AppID           int    `json:"appid"`
			Name            string `json:"name"`
			Playtime2Weeks  int    `json:"playtime_2weeks"`
			PlaytimeForever int    `json:"playtime_forever"`
			ImgIconURL      string `json:"img_icon_url"`
			ImgLogoURL      string `json:"img_logo_url"`
		} `json:"games"`
	} `json:"response"`
}

func (s *apiSource) GetRecentGames(ctx context.Context, steamID string) ([]model.RecentGame, error) {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("steamid", steamID)

	res := &recentGamesResponse{}
	err := s.cli.GetJSON(ctx, WebAPIBase+"/IPlayerService/GetRecentlyPlayedGames/v0001/", params, res)
	if err != nil {
		return nil, ErrNotFound
	}

	games := make([]model.RecentGame, 0, len(res.Response.Games))
	for _, g := range res.Response.Games {
		games = append(
			games, model.RecentGame{
				AppID:           g.AppID,
				Name:            g.Name,
				Playtime2Weeks:  g.Playtime2Weeks,
				PlaytimeForever: g.PlaytimeForever,
				IconURL:         gameImageURL(g.AppID, g.ImgIconURL),
				LogoURL:         gameImageURL(g.AppID, g.ImgLogoURL),
			},
		)
	}
	return games, nil
}

func gameImageURL(appID int, hash string) string {
	if hash == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s.jpg", MediaBase, appID, hash)
}

type communitySource struct {
	cli *Client
	log *zap.Logger
}

type communityProfilePage struct {
	SteamID64       string `xml:"steamID64"`
	SteamID         string `xml:"steamID"`
	RealName        string `xml:"realname"`
	CustomURL       string `xml:"customURL"`
	AvatarIcon      string `xml:"avatarIcon"`
	AvatarMedium    string `xml:"avatarMedium"`
	AvatarFull      string `xml:"avatarFull"`
	VisibilityState int    `xml:"visibilityState"`
}

// GetProfile maps the public XML profile page into a limited profile:
// presence, level and owned games require the authenticated API.
func (s *communitySource) GetProfile(ctx context.Context, steamID string) (*model.SteamProfile, error) {
	params := url.Values{}
	params.Set("xml", "1")

	body, err := s.cli.GetRaw(ctx, CommunityBase+"/profiles/"+url.PathEscape(steamID), params)
	if err != nil {
		return nil, ErrNotFound
	}

	page := &communityProfilePage{}
	if err = xml.Unmarshal(body, page); err != nil {
		s.log.Debug("profile page is not valid xml", zap.String("steamid", steamID), zap.Error(err))
		return nil, ErrNotFound
	}

	if page.SteamID64 == "" {
		return nil, ErrNotFound
	}

	profileURL := CommunityBase + "/profiles/" + page.SteamID64
	if page.CustomURL != "" {
		profileURL = CommunityBase + "/id/" + page.CustomURL
	}

	return &model.SteamProfile{
		SteamID:      page.SteamID64,
		PersonaName:  page.SteamID,
		RealName:     page.RealName,
		ProfileURL:   profileURL,
		Avatar:       page.AvatarIcon,
		AvatarMedium: page.AvatarMedium,
		AvatarFull:   page.AvatarFull,
		PersonaState: "Unknown (API key required)",
		Visibility:   page.VisibilityState,
		Limited:      true,
	}, nil
}

func (s *communitySource) GetFriends(_ context.Context, _ string) ([]model.FriendEntry, error) {
	return nil, ErrAPIKeyRequired
}

func (s *communitySource) GetRecentGames(_ context.Context, _ string) ([]model.RecentGame, error) {
	return nil, ErrAPIKeyRequired
}
