package steam

import (
	"context"
	"encoding/xml"
	"net/url"
	"regexp"

	"go.uber.org/zap"
)

var steam64Pattern = regexp.MustCompile(`^765\d{14}$`)
var vanityPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,32}$`)
var profileURLPattern = regexp.MustCompile(`/id/([a-zA-Z0-9_-]+)`)
var profileIDPattern = regexp.MustCompile(`/profiles/(765\d{14})`)

// Resolver turns user-supplied identifiers (Steam64 IDs, vanity names,
// full profile URLs) into canonical Steam64 IDs.
type Resolver struct {
	cli    *Client
	apiKey string
	log    *zap.Logger
}

func NewResolver(cli *Client, apiKey string, log *zap.Logger) *Resolver {
	return &Resolver{
		cli:    cli,
		apiKey: apiKey,
		log:    log,
	}
}

type vanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
	} `json:"response"`
}

type communityProfile struct {
	SteamID64 string `xml:"steamID64"`
}

// Resolve returns the canonical Steam64 ID for identifier, or
// ErrNotFound. Canonical IDs and /profiles/{id} URLs resolve without a
// network call.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (string, error) {
	if steam64Pattern.MatchString(identifier) {
		return identifier, nil
	}

	if m := profileIDPattern.FindStringSubmatch(identifier); m != nil {
		return m[1], nil
	}

	vanity := ""
	if vanityPattern.MatchString(identifier) {
		vanity = identifier
	} else if m := profileURLPattern.FindStringSubmatch(identifier); m != nil {
		vanity = m[1]
	}

	if vanity == "" {
		r.log.Debug("identifier matched no known shape", zap.String("identifier", identifier))
		return "", ErrNotFound
	}

	if r.apiKey != "" {
		if sid, err := r.resolveViaAPI(ctx, vanity); err == nil {
			return sid, nil
		}
	}

	return r.resolveViaCommunity(ctx, vanity)
}

func (r *Resolver) resolveViaAPI(ctx context.Context, vanity string) (string, error) {
	params := url.Values{}
	params.Set("key", r.apiKey)
	params.Set("vanityurl", vanity)

	res := &vanityResponse{}
	err := r.cli.GetJSON(ctx, WebAPIBase+"/ISteamUser/ResolveVanityURL/v0001/", params, res)
	if err != nil {
		return "", ErrNotFound
	}

	if res.Response.Success != 1 || res.Response.SteamID == "" {
		return "", ErrNotFound
	}
	return res.Response.SteamID, nil
}

func (r *Resolver) resolveViaCommunity(ctx context.Context, vanity string) (string, error) {
	params := url.Values{}
	params.Set("xml", "1")

	body, err := r.cli.GetRaw(ctx, CommunityBase+"/id/"+url.PathEscape(vanity), params)
	if err != nil {
		return "", ErrNotFound
	}

	profile := &communityProfile{}
	if err = xml.Unmarshal(body, profile); err != nil {
		r.log.Debug("community profile page is not valid xml", zap.String("vanity", vanity), zap.Error(err))
		return "", ErrNotFound
	}

	if !steam64Pattern.MatchString(profile.SteamID64) {
		return "", ErrNotFound
	}
	return profile.SteamID64, nil
}
