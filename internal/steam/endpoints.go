package steam

// Upstream base URLs.
const (
	WebAPIBase    = "https://api.steampowered.com"
	CommunityBase = "https://steamcommunity.com"
	StoreAPIBase  = "https://store.steampowered.com/api"

	// ImageCDNBase prefixes bare economy image fragments returned by the
	// market and inventory endpoints.
	ImageCDNBase = "https://community.fastly.steamstatic.com/economy/image/"

	// MediaBase prefixes game icon hashes from GetRecentlyPlayedGames.
	MediaBase = "https://media.steampowered.com/steamcommunity/public/images/apps"
)
