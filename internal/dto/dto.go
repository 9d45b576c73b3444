package dto

import (
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
)

type TestResponse struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	App       string `json:"app"`
	Version   string `json:"version"`
}

type StatusResponse struct {
	Success   bool               `json:"success"`
	Timestamp string             `json:"timestamp"`
	Status    *model.SteamStatus `json:"status"`
}

type ProfileResponse struct {
	Success   bool                `json:"success"`
	Timestamp string              `json:"timestamp"`
	Profile   *model.SteamProfile `json:"profile"`
}

type FriendsResponse struct {
	Success   bool                `json:"success"`
	Timestamp string              `json:"timestamp"`
	Friends   []model.FriendEntry `json:"friends"`
}

type RecentGamesResponse struct {
	Success   bool               `json:"success"`
	Timestamp string             `json:"timestamp"`
	Games     []model.RecentGame `json:"games"`
}

type InventoryResponse struct {
	Success   bool             `json:"success"`
	Timestamp string           `json:"timestamp"`
	Inventory *model.Inventory `json:"inventory"`
}

type PriceResponse struct {
	Success   bool              `json:"success"`
	Timestamp string            `json:"timestamp"`
	Item      *model.PriceQuote `json:"item"`
}

type ItemsResponse struct {
	Success   bool               `json:"success"`
	Timestamp string             `json:"timestamp"`
	Items     []model.MarketItem `json:"items"`
}

type AppResponse struct {
	Success   bool           `json:"success"`
	Timestamp string         `json:"timestamp"`
	App       *model.AppInfo `json:"app"`
}

type AppsResponse struct {
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
	Apps      []model.AppInfo `json:"apps"`
}
