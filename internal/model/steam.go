package model

// Community visibility states as reported by GetPlayerSummaries.
const (
	VisibilityUnknown     = 0
	VisibilityPrivate     = 1
	VisibilityFriendsOnly = 2
	VisibilityPublic      = 3
)

// PersonaStateName maps the numeric personastate field to its
// human-readable form. Unknown values map to "Unknown".
func PersonaStateName(state int) string {
	names := []string{
		"Offline",
		"Online",
		"Busy",
		"Away",
		"Snooze",
		"Looking to trade",
		"Looking to play",
	}
	if state < 0 || state >= len(names) {
		return "Unknown"
	}
	return names[state]
}

type SteamProfile struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	RealName     string `json:"realname,omitempty"`
	ProfileURL   string `json:"profileurl"`
	Avatar       string `json:"avatar"`
	AvatarMedium string `json:"avatarmedium"`
	AvatarFull   string `json:"avatarfull"`
	PersonaState string `json:"personastate"`
	Visibility   int    `json:"communityvisibilitystate"`
	TimeCreated  int64  `json:"timecreated,omitempty"`
	Level        int    `json:"level"`
	GameCount    int    `json:"game_count"`

	// Limited marks profiles built from the public community XML page,
	// where presence, level and owned games are unavailable.
	Limited bool `json:"limited"`
}

type FriendEntry struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since,omitempty"`
}

type RecentGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	Playtime2Weeks  int    `json:"playtime_2weeks"`
	PlaytimeForever int    `json:"playtime_forever"`
	IconURL         string `json:"img_icon_url,omitempty"`
	LogoURL         string `json:"img_logo_url,omitempty"`
}

type InventoryItem struct {
	AssetID        string `json:"assetid"`
	ClassID        string `json:"classid"`
	InstanceID     string `json:"instanceid"`
	Amount         int    `json:"amount"`
	Name           string `json:"name"`
	MarketName     string `json:"market_name"`
	MarketHashName string `json:"market_hash_name"`
	Tradable       bool   `json:"tradable"`
	Marketable     bool   `json:"marketable"`
	Commodity      bool   `json:"commodity"`
	Type           string `json:"type"`
	IconURL        string `json:"icon_url,omitempty"`
	IconURLLarge   string `json:"icon_url_large,omitempty"`
	Exterior       string `json:"exterior,omitempty"`
	Rarity         string `json:"rarity,omitempty"`
}

type Inventory struct {
	SteamID    string   `json:"steamid"`
	AppID      int      `json:"appid"`
	ContextIDs []string `json:"context_ids"`
	TotalCount int      `json:"total_count"`

	// DroppedAssets counts assets that had no matching description and
	// were excluded from Items.
	DroppedAssets int `json:"dropped_assets"`

	Items []InventoryItem `json:"items"`
}

type PriceQuote struct {
	MarketHashName  string `json:"market_hash_name"`
	AppID           int    `json:"appid"`
	Currency        string `json:"currency"`
	LowestPrice     int    `json:"lowest_price"`
	LowestPriceText string `json:"lowest_price_text"`
	MedianPrice     int    `json:"median_price"`
	MedianPriceText string `json:"median_price_text"`
	Volume          int    `json:"volume"`
	ImageURL        string `json:"image_url,omitempty"`
}

type MarketItem struct {
	Name          string `json:"name"`
	HashName      string `json:"hash_name"`
	AppID         int    `json:"appid"`
	SellPrice     int    `json:"sell_price"`
	SellPriceText string `json:"sell_price_text"`
	SellListings  int    `json:"sell_listings"`
	ImageURL      string `json:"image_url,omitempty"`
}

type AppInfo struct {
	AppID       int      `json:"appid"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	HeaderImage string   `json:"header_image,omitempty"`
	Developers  []string `json:"developers,omitempty"`
	HasMarket   bool     `json:"has_market"`
}

type SteamStatus struct {
	Online           bool   `json:"online"`
	ServerTime       int64  `json:"servertime,omitempty"`
	ServerTimeString string `json:"servertimestring,omitempty"`
}
