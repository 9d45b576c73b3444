package steam

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractExterior(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		expected string
	}{
		{"FactoryNew", "AK-47 | Redline (Factory New)", "Factory New"},
		{"MinimalWear", "AWP | Asiimov (Minimal Wear)", "Minimal Wear"},
		{"FieldTested", "AK-47 | Redline (Field-Tested)", "Field-Tested"},
		{"WellWorn", "Glock-18 | Fade (Well-Worn)", "Well-Worn"},
		{"BattleScarred", "M4A4 | Howl (Battle-Scarred)", "Battle-Scarred"},
		{"NoParentheses", "AK-47 Redline Factory New", ""},
		{"WrongCase", "AK-47 | Redline (factory new)", ""},
		{"NoExterior", "Sticker | Crown (Foil)", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, ExtractExterior(tt.item))
			},
		)
	}
}

func TestJoinItems(t *testing.T) {
	assets := []inventoryAsset{
		{AssetID: "a1", ClassID: "100", InstanceID: "0", Amount: "1"},
		{AssetID: "a2", ClassID: "200", InstanceID: "5", Amount: "3"},
		{AssetID: "a3", ClassID: "999", InstanceID: "0", Amount: "1"}, // no description
	}
	descriptions := []inventoryDescription{
		{
			ClassID:        "100",
			InstanceID:     "0",
			Name:           "AK-47 | Redline (Field-Tested)",
			MarketHashName: "AK-47 | Redline (Field-Tested)",
			Tradable:       1,
			Marketable:     1,
			IconURL:        "frag100",
			Tags: []inventoryTag{
				{Category: "Type", LocalizedTagName: "Rifle"},
				{Category: "Rarity", LocalizedTagName: "Classified"},
			},
		},
		{
			ClassID:    "200",
			InstanceID: "5",
			Name:       "Sticker | Crown (Foil)",
			Commodity:  1,
		},
		{ClassID: "300", InstanceID: "0", Name: "Unreferenced"},
	}

	items, dropped := joinItems(assets, descriptions)

	require.Len(t, items, 2)
	assert.Equal(t, 1, dropped)

	assert.Equal(t, "a1", items[0].AssetID)
	assert.Equal(t, 1, items[0].Amount)
	assert.True(t, items[0].Tradable)
	assert.Equal(t, "Field-Tested", items[0].Exterior)
	assert.Equal(t, "Classified", items[0].Rarity)
	assert.Equal(t, ImageCDNBase+"frag100", items[0].IconURL)

	assert.Equal(t, "a2", items[1].AssetID)
	assert.Equal(t, 3, items[1].Amount)
	assert.True(t, items[1].Commodity)
	assert.Empty(t, items[1].Exterior)
	assert.Empty(t, items[1].Rarity)
}

func TestJoinItems_CountBound(t *testing.T) {
	// The join is a set intersection on classid_instanceid: the result
	// can never exceed the asset count.
	assets := []inventoryAsset{
		{AssetID: "a1", ClassID: "1", InstanceID: "0", Amount: "1"},
		{AssetID: "a2", ClassID: "2", InstanceID: "0", Amount: "1"},
	}
	descriptions := []inventoryDescription{
		{ClassID: "1", InstanceID: "0", Name: "x"},
		{ClassID: "1", InstanceID: "0", Name: "x dup"},
		{ClassID: "3", InstanceID: "0", Name: "y"},
	}

	items, dropped := joinItems(assets, descriptions)
	assert.LessOrEqual(t, len(items), len(assets))
	assert.Equal(t, 1, len(items))
	assert.Equal(t, 1, dropped)
}

func TestInventorySource_GetInventory(t *testing.T) {
	t.Run("Paginated", func(t *testing.T) {
		calls := 0
		src := NewInventorySource(
			fakeClient(
				func(r *http.Request) (int, string) {
					calls++
					assert.Equal(t, "/inventory/"+testSteamID+"/730/2", r.URL.Path)
					assert.Equal(t, "english", r.URL.Query().Get("l"))

					if calls == 1 {
						assert.Empty(t, r.URL.Query().Get("start_assetid"))
						return http.StatusOK, `{
							"success":1,"more_items":1,"last_assetid":"a1",
							"assets":[{"assetid":"a1","classid":"100","instanceid":"0","amount":"1"}],
							"descriptions":[{"classid":"100","instanceid":"0","name":"One","market_hash_name":"One"}]
						}`
					}

					assert.Equal(t, "a1", r.URL.Query().Get("start_assetid"))
					return http.StatusOK, `{
						"success":1,
						"assets":[{"assetid":"a2","classid":"200","instanceid":"0","amount":"1"}],
						"descriptions":[{"classid":"200","instanceid":"0","name":"Two","market_hash_name":"Two"}]
					}`
				},
			), zap.NewNop(),
		)

		inv, err := src.GetInventory(context.Background(), testSteamID, 730, []string{"2"})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 2, inv.TotalCount)
		assert.Equal(t, 0, inv.DroppedAssets)
		assert.Equal(t, "One", inv.Items[0].Name)
		assert.Equal(t, "Two", inv.Items[1].Name)
	})

	t.Run("MultipleContextsMerged", func(t *testing.T) {
		src := NewInventorySource(
			fakeClient(
				func(r *http.Request) (int, string) {
					return http.StatusOK, `{
						"success":1,
						"assets":[{"assetid":"a1","classid":"100","instanceid":"0","amount":"1"}],
						"descriptions":[{"classid":"100","instanceid":"0","name":"Item"}]
					}`
				},
			), zap.NewNop(),
		)

		inv, err := src.GetInventory(context.Background(), testSteamID, 730, []string{"2", "6"})
		require.NoError(t, err)
		assert.Equal(t, 2, inv.TotalCount)
		assert.Equal(t, []string{"2", "6"}, inv.ContextIDs)
	})

	t.Run("EmptyInventory", func(t *testing.T) {
		src := NewInventorySource(
			fakeClient(
				func(r *http.Request) (int, string) {
					return http.StatusOK, `{"success":1,"total_inventory_count":0}`
				},
			), zap.NewNop(),
		)

		_, err := src.GetInventory(context.Background(), testSteamID, 730, []string{"2"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		src := NewInventorySource(
			fakeClient(
				func(r *http.Request) (int, string) {
					return http.StatusForbidden, `null`
				},
			), zap.NewNop(),
		)

		_, err := src.GetInventory(context.Background(), testSteamID, 730, []string{"2"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DroppedAssetsCounted", func(t *testing.T) {
		src := NewInventorySource(
			fakeClient(
				func(r *http.Request) (int, string) {
					return http.StatusOK, `{
						"success":1,
						"assets":[
							{"assetid":"a1","classid":"100","instanceid":"0","amount":"1"},
							{"assetid":"a2","classid":"999","instanceid":"0","amount":"1"}
						],
						"descriptions":[{"classid":"100","instanceid":"0","name":"Item"}]
					}`
				},
			), zap.NewNop(),
		)

		inv, err := src.GetInventory(context.Background(), testSteamID, 730, []string{"2"})
		require.NoError(t, err)
		assert.Equal(t, 1, inv.TotalCount)
		assert.Equal(t, 1, inv.DroppedAssets)
	})
}
