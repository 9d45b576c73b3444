package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/steam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func fakeProvider(handler func(r *http.Request) (int, string)) *Provider {
	transport := roundTripFunc(
		func(r *http.Request) (*http.Response, error) {
			status, body := handler(r)
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		},
	)
	cli := steam.NewClientWithHTTP(&http.Client{Transport: transport}, zap.NewNop())
	return New(cli, zap.NewNop())
}

func searchBody(n int) string {
	results := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		results = append(
			results, map[string]any{
				"name":            fmt.Sprintf("Item %d", i),
				"hash_name":       fmt.Sprintf("Item %d", i),
				"sell_listings":   100 - i,
				"sell_price":      1000 + i,
				"sell_price_text": "$10.00",
				"asset_description": map[string]any{
					"icon_url": fmt.Sprintf("frag%d", i),
				},
			},
		)
	}

	body, _ := json.Marshal(map[string]any{"success": true, "results": results})
	return string(body)
}

func TestBuildImageURL(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{"AbsolutePassthrough", "https://cdn.example/img.png", "https://cdn.example/img.png"},
		{"BareFragment", "abc123xyz", steam.ImageCDNBase + "abc123xyz"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, BuildImageURL(tt.fragment))
			},
		)
	}
}

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"$1.23", 123},
		{"$0.03", 3},
		{"$1,234.56", 123456},
		{"$12", 1200},
		{"$1.5", 150},
		{"", 0},
		{"unparseable", 0},
	}

	for _, tt := range tests {
		t.Run(
			tt.text, func(t *testing.T) {
				assert.Equal(t, tt.expected, parsePriceCents(tt.text))
			},
		)
	}
}

func TestProvider_Search_Clamping(t *testing.T) {
	p := fakeProvider(
		func(r *http.Request) (int, string) {
			count, err := strconv.Atoi(r.URL.Query().Get("count"))
			require.NoError(t, err)
			assert.LessOrEqual(t, count, MaxSearchCount)
			return http.StatusOK, searchBody(count)
		},
	)

	res, err := p.Search(context.Background(), "AK-47", 730, 500)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res), MaxSearchCount)
	assert.Len(t, res, MaxSearchCount)
}

func TestProvider_Search(t *testing.T) {
	t.Run("DefaultCount", func(t *testing.T) {
		p := fakeProvider(
			func(r *http.Request) (int, string) {
				assert.Equal(t, strconv.Itoa(DefaultSearchCount), r.URL.Query().Get("count"))
				assert.Equal(t, "AK-47", r.URL.Query().Get("query"))
				assert.Equal(t, "1", r.URL.Query().Get("norender"))
				return http.StatusOK, searchBody(DefaultSearchCount)
			},
		)

		res, err := p.Search(context.Background(), "AK-47", 730, 0)
		require.NoError(t, err)
		assert.Len(t, res, DefaultSearchCount)
		assert.Equal(t, steam.ImageCDNBase+"frag0", res[0].ImageURL)
		assert.Equal(t, 730, res[0].AppID)
	})

	t.Run("NoResults", func(t *testing.T) {
		p := fakeProvider(
			func(r *http.Request) (int, string) {
				return http.StatusOK, `{"success":true,"results":[]}`
			},
		)

		_, err := p.Search(context.Background(), "nothing", 730, 10)
		assert.ErrorIs(t, err, steam.ErrNotFound)
	})

	t.Run("UpstreamFailureFlag", func(t *testing.T) {
		p := fakeProvider(
			func(r *http.Request) (int, string) {
				return http.StatusOK, `{"success":false}`
			},
		)

		_, err := p.Search(context.Background(), "AK-47", 730, 10)
		assert.ErrorIs(t, err, steam.ErrNotFound)
	})
}

func TestProvider_Popular(t *testing.T) {
	p := fakeProvider(
		func(r *http.Request) (int, string) {
			assert.Equal(t, "popular", r.URL.Query().Get("sort_column"))
			assert.Equal(t, "desc", r.URL.Query().Get("sort_dir"))

			count, err := strconv.Atoi(r.URL.Query().Get("count"))
			require.NoError(t, err)
			assert.LessOrEqual(t, count, MaxPopularCount)
			return http.StatusOK, searchBody(count)
		},
	)

	res, err := p.Popular(context.Background(), 730, 500)
	require.NoError(t, err)
	assert.Len(t, res, MaxPopularCount)
}

func TestProvider_GetPrice(t *testing.T) {
	t.Run("WithImageLookup", func(t *testing.T) {
		p := fakeProvider(
			func(r *http.Request) (int, string) {
				if strings.Contains(r.URL.Path, "priceoverview") {
					assert.Equal(t, "AK-47 | Redline (Field-Tested)", r.URL.Query().Get("market_hash_name"))
					return http.StatusOK, `{"success":true,"lowest_price":"$4.20","median_price":"$4.55","volume":"1,234"}`
				}
				return http.StatusOK, searchBody(1)
			},
		)

		res, err := p.GetPrice(context.Background(), "AK-47 | Redline (Field-Tested)", 730)
		require.NoError(t, err)
		assert.Equal(t, 420, res.LowestPrice)
		assert.Equal(t, "$4.20", res.LowestPriceText)
		assert.Equal(t, 455, res.MedianPrice)
		assert.Equal(t, 1234, res.Volume)
		assert.Equal(t, steam.ImageCDNBase+"frag0", res.ImageURL)
	})

	t.Run("ImageLookupBestEffort", func(t *testing.T) {
		p := fakeProvider(
			func(r *http.Request) (int, string) {
				if strings.Contains(r.URL.Path, "priceoverview") {
					return http.StatusOK, `{"success":true,"lowest_price":"$4.20"}`
				}
				return http.StatusTooManyRequests, ""
			},
		)

		res, err := p.GetPrice(context.Background(), "AK-47 | Redline (Field-Tested)", 730)
		require.NoError(t, err)
		assert.Empty(t, res.ImageURL)
	})

	t.Run("NotFound", func(t *testing.T) {
		p := fakeProvider(
			func(r *http.Request) (int, string) {
				return http.StatusOK, `{"success":false}`
			},
		)

		_, err := p.GetPrice(context.Background(), "No Such Item", 730)
		assert.ErrorIs(t, err, steam.ErrNotFound)
	})
}
