package service

import (
	"context"
	"errors"
	"testing"

	"linktrack/internal/mocks"
	"linktrack/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_RecordSource(t *testing.T) {
	tests := []struct {
		name       string
		referer    string
		wantSource string
	}{
		{name: "direct traffic", referer: "", wantSource: "direct"},
		{name: "instagram", referer: "https://www.instagram.com/stories/creator", wantSource: "instagram"},
		{name: "instagram short host", referer: "https://l.instagram.com/", wantSource: "instagram"},
		{name: "tiktok", referer: "https://www.tiktok.com/@creator", wantSource: "tiktok"},
		{name: "youtube", referer: "https://www.youtube.com/watch?v=abc", wantSource: "youtube"},
		{name: "youtube short link", referer: "https://youtu.be/abc", wantSource: "youtube"},
		{name: "facebook", referer: "https://m.facebook.com/", wantSource: "facebook"},
		{name: "pinterest", referer: "https://www.pinterest.com/pin/1", wantSource: "pinterest"},
		{name: "twitter legacy", referer: "https://twitter.com/user", wantSource: "x"},
		{name: "x dot com", referer: "https://x.com/user", wantSource: "x"},
		{name: "google", referer: "https://www.google.com/search?q=promo", wantSource: "google"},
		{name: "other domain uses second level", referer: "https://blog.example.com/post", wantSource: "example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
			mockRedis.EXPECT().AddSource(gomock.Any(), "promo2024", tt.wantSource).Return(nil)

			svc := NewAnalyticsService(mockRedis)

			err := svc.RecordSource(context.Background(), "promo2024", tt.referer)
			assert.NoError(t, err)
		})
	}

	t.Run("redis failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockRedis.EXPECT().AddSource(gomock.Any(), "promo2024", "direct").Return(errors.New("redis error"))

		svc := NewAnalyticsService(mockRedis)

		err := svc.RecordSource(context.Background(), "promo2024", "")
		assert.Error(t, err)
	})
}

func TestAnalyticsService_GetRealtimeStats(t *testing.T) {
	t.Run("returns PV and UV", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockRedis.EXPECT().GetPV(gomock.Any(), "promo2024").Return(int64(100), nil)
		mockRedis.EXPECT().GetUV(gomock.Any(), "promo2024").Return(int64(60), nil)

		svc := NewAnalyticsService(mockRedis)

		stats, err := svc.GetRealtimeStats(context.Background(), "promo2024")
		require.NoError(t, err)
		assert.Equal(t, int64(100), stats.PV)
		assert.Equal(t, int64(60), stats.UV)
	})

	t.Run("redis failures degrade to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockRedis.EXPECT().GetPV(gomock.Any(), "promo2024").Return(int64(0), errors.New("redis error"))
		mockRedis.EXPECT().GetUV(gomock.Any(), "promo2024").Return(int64(0), errors.New("redis error"))

		svc := NewAnalyticsService(mockRedis)

		stats, err := svc.GetRealtimeStats(context.Background(), "promo2024")
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.PV)
		assert.Equal(t, int64(0), stats.UV)
	})
}

func TestAnalyticsService_GetAnalytics(t *testing.T) {
	link := &model.AffiliateLink{
		Token:            "promo2024",
		ClickCount:       250,
		UniqueClickCount: 180,
	}

	t.Run("combines durable counters with realtime mirrors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockRedis.EXPECT().GetPV(gomock.Any(), "promo2024").Return(int64(240), nil)
		mockRedis.EXPECT().GetUV(gomock.Any(), "promo2024").Return(int64(170), nil)
		mockRedis.EXPECT().GetSources(gomock.Any(), "promo2024").Return(map[string]int64{
			"instagram": 120,
			"tiktok":    80,
			"direct":    40,
		}, nil)

		svc := NewAnalyticsService(mockRedis)

		stats, err := svc.GetAnalytics(context.Background(), link)
		require.NoError(t, err)
		assert.Equal(t, "promo2024", stats.Token)
		assert.Equal(t, int64(250), stats.ClickCount)
		assert.Equal(t, int64(180), stats.UniqueClickCount)
		assert.Equal(t, int64(240), stats.PV)
		assert.Equal(t, int64(170), stats.UV)

		require.Len(t, stats.TopSources, 3)
		assert.Equal(t, "instagram", stats.TopSources[0].Source)
		assert.Equal(t, int64(120), stats.TopSources[0].Count)
		assert.Equal(t, "tiktok", stats.TopSources[1].Source)
		assert.Equal(t, "direct", stats.TopSources[2].Source)
	})

	t.Run("source failure degrades to empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockRedis.EXPECT().GetPV(gomock.Any(), "promo2024").Return(int64(0), nil)
		mockRedis.EXPECT().GetUV(gomock.Any(), "promo2024").Return(int64(0), nil)
		mockRedis.EXPECT().GetSources(gomock.Any(), "promo2024").Return(nil, errors.New("redis error"))

		svc := NewAnalyticsService(mockRedis)

		stats, err := svc.GetAnalytics(context.Background(), link)
		require.NoError(t, err)
		assert.Empty(t, stats.TopSources)
	})

	t.Run("top sources capped at ten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sources := make(map[string]int64)
		for i := 0; i < 15; i++ {
			sources[string(rune('a'+i))] = int64(i + 1)
		}

		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockRedis.EXPECT().GetPV(gomock.Any(), "promo2024").Return(int64(0), nil)
		mockRedis.EXPECT().GetUV(gomock.Any(), "promo2024").Return(int64(0), nil)
		mockRedis.EXPECT().GetSources(gomock.Any(), "promo2024").Return(sources, nil)

		svc := NewAnalyticsService(mockRedis)

		stats, err := svc.GetAnalytics(context.Background(), link)
		require.NoError(t, err)
		assert.Len(t, stats.TopSources, 10)
		assert.Equal(t, int64(15), stats.TopSources[0].Count)
	})
}

func TestAnalyticsService_extractSource(t *testing.T) {
	svc := &AnalyticsService{}

	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{name: "empty is direct", referer: "", want: "direct"},
		{name: "unparsable is unknown", referer: "://bad url", want: "unknown"},
		{name: "www prefix stripped", referer: "https://www.shop.example.com/x", want: "example"},
		{name: "bare host", referer: "https://localhost", want: "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.extractSource(tt.referer))
		})
	}
}
