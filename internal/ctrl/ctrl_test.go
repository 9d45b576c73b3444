package ctrl

import (
	"context"
	"errors"
	"testing"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/model"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/steam"
	"github.com/St0pfen/Steam-Market-REST-API-server/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testSteamID = "76561198037867621"

type testMocks struct {
	resolver  *mocks.MockResolver
	profile   *mocks.MockProfileSource
	inventory *mocks.MockInventorySource
	market    *mocks.MockMarketProvider
	apps      *mocks.MockAppSource
}

func newTestController(t *testing.T) (*Controller, *testMocks) {
	mock := gomock.NewController(t)

	m := &testMocks{
		resolver:  mocks.NewMockResolver(mock),
		profile:   mocks.NewMockProfileSource(mock),
		inventory: mocks.NewMockInventorySource(mock),
		market:    mocks.NewMockMarketProvider(mock),
		apps:      mocks.NewMockAppSource(mock),
	}

	ctrl := New(m.resolver, m.profile, m.inventory, m.market, m.apps, zap.NewNop())
	return ctrl, m
}

func TestController_GetProfile(t *testing.T) {
	ctrl, m := newTestController(t)

	profile := &model.SteamProfile{SteamID: testSteamID, PersonaName: "TestUser"}
	testErr := errors.New("test-err")

	tests := []struct {
		name         string
		identifier   string
		mockExpect   func()
		expectedResp func(*testing.T, *model.SteamProfile, error)
	}{
		{
			name:       "ResolveFails",
			identifier: "unknown",
			mockExpect: func() {
				m.resolver.EXPECT().Resolve(
					gomock.Any(), "unknown",
				).Return("", steam.ErrNotFound).Times(1)
			},
			expectedResp: func(t *testing.T, res *model.SteamProfile, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:       "ProfileNotFound",
			identifier: testSteamID,
			mockExpect: func() {
				m.resolver.EXPECT().Resolve(
					gomock.Any(), testSteamID,
				).Return(testSteamID, nil).Times(1)

				m.profile.EXPECT().GetProfile(
					gomock.Any(), testSteamID,
				).Return(nil, steam.ErrNotFound).Times(1)
			},
			expectedResp: func(t *testing.T, res *model.SteamProfile, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:       "UpstreamFailureSurfacesAsNotFound",
			identifier: testSteamID,
			mockExpect: func() {
				m.resolver.EXPECT().Resolve(
					gomock.Any(), testSteamID,
				).Return(testSteamID, nil).Times(1)

				m.profile.EXPECT().GetProfile(
					gomock.Any(), testSteamID,
				).Return(nil, steam.ErrUpstream).Times(1)
			},
			expectedResp: func(t *testing.T, res *model.SteamProfile, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:       "UnexpectedErrorPropagates",
			identifier: testSteamID,
			mockExpect: func() {
				m.resolver.EXPECT().Resolve(
					gomock.Any(), testSteamID,
				).Return(testSteamID, nil).Times(1)

				m.profile.EXPECT().GetProfile(
					gomock.Any(), testSteamID,
				).Return(nil, testErr).Times(1)
			},
			expectedResp: func(t *testing.T, res *model.SteamProfile, err error) {
				assert.Nil(t, res)
				assert.Equal(t, testErr, err)
			},
		},
		{
			name:       "Success",
			identifier: "gaben",
			mockExpect: func() {
				m.resolver.EXPECT().Resolve(
					gomock.Any(), "gaben",
				).Return(testSteamID, nil).Times(1)

				m.profile.EXPECT().GetProfile(
					gomock.Any(), testSteamID,
				).Return(profile, nil).Times(1)
			},
			expectedResp: func(t *testing.T, res *model.SteamProfile, err error) {
				require.NoError(t, err)
				assert.Equal(t, profile, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.mockExpect()
				res, err := ctrl.GetProfile(context.Background(), tt.identifier)
				tt.expectedResp(t, res, err)
			},
		)
	}
}

func TestController_GetFriends(t *testing.T) {
	ctrl, m := newTestController(t)

	t.Run("KeyGated", func(t *testing.T) {
		m.resolver.EXPECT().Resolve(
			gomock.Any(), testSteamID,
		).Return(testSteamID, nil).Times(1)

		m.profile.EXPECT().GetFriends(
			gomock.Any(), testSteamID,
		).Return(nil, steam.ErrAPIKeyRequired).Times(1)

		res, err := ctrl.GetFriends(context.Background(), testSteamID)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrAPIKeyRequired)
	})

	t.Run("Success", func(t *testing.T) {
		friends := []model.FriendEntry{{SteamID: "76561198000000001", Relationship: "friend"}}

		m.resolver.EXPECT().Resolve(
			gomock.Any(), testSteamID,
		).Return(testSteamID, nil).Times(1)

		m.profile.EXPECT().GetFriends(
			gomock.Any(), testSteamID,
		).Return(friends, nil).Times(1)

		res, err := ctrl.GetFriends(context.Background(), testSteamID)
		require.NoError(t, err)
		assert.Equal(t, friends, res)
	})
}

func TestController_GetInventory(t *testing.T) {
	ctrl, m := newTestController(t)
	contextIDs := []string{"2"}

	t.Run("PrivateProfileReason", func(t *testing.T) {
		m.resolver.EXPECT().Resolve(
			gomock.Any(), testSteamID,
		).Return(testSteamID, nil).Times(1)

		m.inventory.EXPECT().GetInventory(
			gomock.Any(), testSteamID, 730, contextIDs,
		).Return(nil, steam.ErrNotFound).Times(1)

		m.profile.EXPECT().GetProfile(
			gomock.Any(), testSteamID,
		).Return(&model.SteamProfile{Visibility: model.VisibilityPrivate}, nil).Times(1)

		res, err := ctrl.GetInventory(context.Background(), testSteamID, 730, contextIDs)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "profile is private")
	})

	t.Run("FriendsOnlyReason", func(t *testing.T) {
		m.resolver.EXPECT().Resolve(
			gomock.Any(), testSteamID,
		).Return(testSteamID, nil).Times(1)

		m.inventory.EXPECT().GetInventory(
			gomock.Any(), testSteamID, 730, contextIDs,
		).Return(nil, steam.ErrNotFound).Times(1)

		m.profile.EXPECT().GetProfile(
			gomock.Any(), testSteamID,
		).Return(&model.SteamProfile{Visibility: model.VisibilityFriendsOnly}, nil).Times(1)

		_, err := ctrl.GetInventory(context.Background(), testSteamID, 730, contextIDs)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "friends only")
	})

	t.Run("ProfileLookupFailsSoft", func(t *testing.T) {
		m.resolver.EXPECT().Resolve(
			gomock.Any(), testSteamID,
		).Return(testSteamID, nil).Times(1)

		m.inventory.EXPECT().GetInventory(
			gomock.Any(), testSteamID, 730, contextIDs,
		).Return(nil, steam.ErrNotFound).Times(1)

		m.profile.EXPECT().GetProfile(
			gomock.Any(), testSteamID,
		).Return(nil, steam.ErrNotFound).Times(1)

		_, err := ctrl.GetInventory(context.Background(), testSteamID, 730, contextIDs)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "not accessible")
	})

	t.Run("Success", func(t *testing.T) {
		inv := &model.Inventory{SteamID: testSteamID, AppID: 730, TotalCount: 1}

		m.resolver.EXPECT().Resolve(
			gomock.Any(), "gaben",
		).Return(testSteamID, nil).Times(1)

		m.inventory.EXPECT().GetInventory(
			gomock.Any(), testSteamID, 730, contextIDs,
		).Return(inv, nil).Times(1)

		res, err := ctrl.GetInventory(context.Background(), "gaben", 730, contextIDs)
		require.NoError(t, err)
		assert.Equal(t, inv, res)
	})
}

func TestController_Market(t *testing.T) {
	ctrl, m := newTestController(t)

	t.Run("GetItemPrice", func(t *testing.T) {
		quote := &model.PriceQuote{MarketHashName: "AK-47 | Redline (Field-Tested)", LowestPrice: 420}

		m.market.EXPECT().GetPrice(
			gomock.Any(), quote.MarketHashName, 730,
		).Return(quote, nil).Times(1)

		res, err := ctrl.GetItemPrice(context.Background(), quote.MarketHashName, 730)
		require.NoError(t, err)
		assert.Equal(t, quote, res)
	})

	t.Run("SearchItemsNotFound", func(t *testing.T) {
		m.market.EXPECT().Search(
			gomock.Any(), "nothing", 730, 10,
		).Return(nil, steam.ErrNotFound).Times(1)

		res, err := ctrl.SearchItems(context.Background(), "nothing", 730, 10)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PopularItems", func(t *testing.T) {
		items := []model.MarketItem{{Name: "Item", HashName: "Item"}}

		m.market.EXPECT().Popular(
			gomock.Any(), 730, 100,
		).Return(items, nil).Times(1)

		res, err := ctrl.PopularItems(context.Background(), 730, 100)
		require.NoError(t, err)
		assert.Equal(t, items, res)
	})
}

func TestController_Shop(t *testing.T) {
	ctrl, m := newTestController(t)

	t.Run("GetApp", func(t *testing.T) {
		app := &model.AppInfo{AppID: 730, Name: "Counter-Strike 2", HasMarket: true}

		m.apps.EXPECT().GetApp(gomock.Any(), 730).Return(app, nil).Times(1)

		res, err := ctrl.GetApp(context.Background(), 730)
		require.NoError(t, err)
		assert.Equal(t, app, res)
	})

	t.Run("SupportedApps", func(t *testing.T) {
		apps := []model.AppInfo{{AppID: 730, Name: "Counter-Strike 2"}}

		m.apps.EXPECT().SupportedApps().Return(apps).Times(1)

		assert.Equal(t, apps, ctrl.SupportedApps(context.Background()))
	})

	t.Run("SteamStatus", func(t *testing.T) {
		m.apps.EXPECT().Status(gomock.Any()).Return(&model.SteamStatus{Online: true}, nil).Times(1)

		res, err := ctrl.SteamStatus(context.Background())
		require.NoError(t, err)
		assert.True(t, res.Online)
	})
}
