package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linktrack/internal/attribution"
	"linktrack/internal/config"
	"linktrack/internal/mocks"
	"linktrack/internal/model"
	"linktrack/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const fallbackURL = "https://example.com/link-unavailable"

func testAttrCfg() *config.AttributionConfig {
	return &config.AttributionConfig{
		IPSalt:            "test-salt",
		DefaultWindowDays: 30,
		FallbackURL:       fallbackURL,
	}
}

func newTestRedirectRouter(h *RedirectHandler) *gin.Engine {
	router := gin.New()
	router.GET("/:token", h.Redirect)
	return router
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestNewRedirectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockClickService := mocks.NewMockClickServiceInterface(ctrl)

	handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), false)

	assert.NotNil(t, handler)
}

func TestRedirectHandler_Redirect(t *testing.T) {
	t.Run("malformed token falls back without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)
		// No expectations: neither service may be called

		handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), false)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackURL, w.Header().Get("Location"))
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("unavailable link falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)

		mockLinkService.EXPECT().Resolve(gomock.Any(), "promo2024").Return(nil, service.ErrLinkUnavailable)

		handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), false)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/promo2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackURL, w.Header().Get("Location"))
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("store failure falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)

		mockLinkService.EXPECT().Resolve(gomock.Any(), "promo2024").Return(nil, errors.New("connection refused"))

		handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), false)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/promo2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fallbackURL, w.Header().Get("Location"))
	})

	t.Run("successful redirect records click and sets cookies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)

		link := &model.AffiliateLink{
			ID:                    42,
			Token:                 "promo2024",
			DestinationURL:        "https://example.com/product",
			IsActive:              true,
			AttributionWindowDays: 7,
		}

		mockLinkService.EXPECT().Resolve(gomock.Any(), "promo2024").Return(link, nil)
		mockClickService.EXPECT().Record(gomock.Any(), link, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *model.AffiliateLink, visit *model.Visit) (*model.ClickResult, error) {
				assert.NotEmpty(t, visit.VisitorID)
				assert.False(t, visit.IsReturning)
				assert.NotEmpty(t, visit.IPHash)
				assert.NotEmpty(t, visit.UserAgentHash)
				return &model.ClickResult{IsUnique: true, IsRevisit: false}, nil
			})

		handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), false)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/promo2024", nil)
		req.Header.Set("User-Agent", "Mozilla/5.0")
		req.RemoteAddr = "203.0.113.7:1234"
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com/product", w.Header().Get("Location"))

		visitorCookie := findCookie(t, w, attribution.VisitorCookie)
		require.NotNil(t, visitorCookie)
		assert.Len(t, visitorCookie.Value, 32)
		assert.False(t, visitorCookie.HttpOnly)

		attrCookie := findCookie(t, w, attribution.AttributionCookie)
		require.NotNil(t, attrCookie)
		assert.Equal(t, "promo2024", attrCookie.Value)
		assert.True(t, attrCookie.HttpOnly)

		// Expiry follows the link's own 7-day window, not the 30-day default
		assert.Equal(t, 7*24*60*60, visitorCookie.MaxAge)
		assert.Equal(t, 7*24*60*60, attrCookie.MaxAge)
	})

	t.Run("returning visitor keeps its cookie identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)

		link := &model.AffiliateLink{
			ID:             42,
			Token:          "promo2024",
			DestinationURL: "https://example.com/product",
			IsActive:       true,
		}
		visitorID := "a1b2c3d4e5f60718293a4b5c6d7e8f90"

		mockLinkService.EXPECT().Resolve(gomock.Any(), "promo2024").Return(link, nil)
		mockClickService.EXPECT().Record(gomock.Any(), link, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *model.AffiliateLink, visit *model.Visit) (*model.ClickResult, error) {
				assert.Equal(t, visitorID, visit.VisitorID)
				assert.True(t, visit.IsReturning)
				return &model.ClickResult{IsUnique: false, IsRevisit: true}, nil
			})

		handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), false)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/promo2024", nil)
		req.AddCookie(&http.Cookie{Name: attribution.VisitorCookie, Value: visitorID})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)

		visitorCookie := findCookie(t, w, attribution.VisitorCookie)
		require.NotNil(t, visitorCookie)
		assert.Equal(t, visitorID, visitorCookie.Value)
	})

	t.Run("tracking failure still redirects to the destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)

		link := &model.AffiliateLink{
			ID:             42,
			Token:          "promo2024",
			DestinationURL: "https://example.com/product",
			IsActive:       true,
		}

		mockLinkService.EXPECT().Resolve(gomock.Any(), "promo2024").Return(link, nil)
		mockClickService.EXPECT().Record(gomock.Any(), link, gomock.Any()).Return(nil, errors.New("db error"))

		handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), false)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/promo2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com/product", w.Header().Get("Location"))
		// Cookies are still issued so the next visit is classified correctly
		assert.NotNil(t, findCookie(t, w, attribution.VisitorCookie))
	})

	t.Run("click event published to MQ", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)

		link := &model.AffiliateLink{
			ID:             42,
			Token:          "promo2024",
			DestinationURL: "https://example.com/product",
			IsActive:       true,
		}

		mockLinkService.EXPECT().Resolve(gomock.Any(), "promo2024").Return(link, nil)
		mockClickService.EXPECT().Record(gomock.Any(), link, gomock.Any()).Return(&model.ClickResult{IsUnique: true}, nil)
		// Published asynchronously
		mockProducer.EXPECT().SendClick(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		handler := NewRedirectHandler(mockLinkService, mockClickService, mockProducer, testAttrCfg(), false)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/promo2024", nil)
		router.ServeHTTP(w, req)

		// Wait for the publish goroutine
		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("secure cookies in release mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockClickService := mocks.NewMockClickServiceInterface(ctrl)

		link := &model.AffiliateLink{
			ID:             42,
			Token:          "promo2024",
			DestinationURL: "https://example.com/product",
			IsActive:       true,
		}

		mockLinkService.EXPECT().Resolve(gomock.Any(), "promo2024").Return(link, nil)
		mockClickService.EXPECT().Record(gomock.Any(), link, gomock.Any()).Return(&model.ClickResult{IsUnique: true}, nil)

		handler := NewRedirectHandler(mockLinkService, mockClickService, nil, testAttrCfg(), true)
		router := newTestRedirectRouter(handler)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/promo2024", nil)
		router.ServeHTTP(w, req)

		visitorCookie := findCookie(t, w, attribution.VisitorCookie)
		require.NotNil(t, visitorCookie)
		assert.True(t, visitorCookie.Secure)
	})
}
