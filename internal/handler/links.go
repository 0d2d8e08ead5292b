package handler

import (
	"errors"
	"net/http"
	"strconv"

	"linktrack/internal/model"
	"linktrack/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles the link management API
type LinkHandler struct {
	linkService      service.LinkServiceInterface
	analyticsService service.AnalyticsServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(linkService service.LinkServiceInterface, analyticsService service.AnalyticsServiceInterface) *LinkHandler {
	return &LinkHandler{
		linkService:      linkService,
		analyticsService: analyticsService,
	}
}

// Create handles POST /api/v1/links
// @Summary Register an affiliate link
// @Description Registers a destination URL under a new or caller-chosen token
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 200 {object} Response{data=model.CreateLinkResponse}
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	resp, err := h.linkService.Create(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrInvalidDestination):
			status = http.StatusBadRequest
		case errors.Is(err, service.ErrTokenTaken):
			status = http.StatusConflict
		}
		c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to register link: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

// Deactivate handles POST /api/v1/links/:token/deactivate
// @Summary Deactivate an affiliate link
// @Description Marks the link inactive; its click history is preserved
// @Tags links
// @Param token path string true "Link token"
// @Success 200 {object} Response
// @Router /api/v1/links/:token/deactivate [post]
func (h *LinkHandler) Deactivate(c *gin.Context) {
	tok := c.Param("token")

	if err := h.linkService.Deactivate(c.Request.Context(), tok); err != nil {
		if errors.Is(err, service.ErrLinkUnavailable) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to deactivate link",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
	})
}

// Stats handles GET /api/v1/links/:token/stats
// @Summary Get attribution stats for a link
// @Description Returns durable click counters plus realtime PV/UV and top referrer sources
// @Tags analytics
// @Param token path string true "Link token"
// @Success 200 {object} Response{data=model.StatsResponse}
// @Router /api/v1/links/:token/stats [get]
func (h *LinkHandler) Stats(c *gin.Context) {
	tok := c.Param("token")

	link, err := h.linkService.GetByToken(c.Request.Context(), tok)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Link not found",
		})
		return
	}

	stats, err := h.analyticsService.GetAnalytics(c.Request.Context(), link)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get analytics",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}

// Clicks handles GET /api/v1/links/:token/clicks
// @Summary List recent clicks for a link
// @Description Returns recent click rows; IP and user-agent appear only as hashes
// @Tags analytics
// @Param token path string true "Link token"
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {object} Response{data=[]model.Click}
// @Router /api/v1/links/:token/clicks [get]
func (h *LinkHandler) Clicks(c *gin.Context) {
	tok := c.Param("token")

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	clicks, err := h.linkService.RecentClicks(c.Request.Context(), tok, limit)
	if err != nil {
		if errors.Is(err, service.ErrLinkUnavailable) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list clicks",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    clicks,
	})
}

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
