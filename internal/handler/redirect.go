package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"linktrack/internal/attribution"
	"linktrack/internal/config"
	"linktrack/internal/model"
	"linktrack/internal/mq"
	"linktrack/internal/service"
	"linktrack/internal/token"
	"linktrack/pkg/ident"
	"linktrack/pkg/metrics"
	"linktrack/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedirectHandler handles affiliate link redirection with click tracking
type RedirectHandler struct {
	linkService   service.LinkServiceInterface
	clickService  service.ClickServiceInterface
	mqProducer    mq.ProducerInterface
	attrCfg       *config.AttributionConfig
	secureCookies bool
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	linkService service.LinkServiceInterface,
	clickService service.ClickServiceInterface,
	mqProducer mq.ProducerInterface,
	attrCfg *config.AttributionConfig,
	secureCookies bool,
) *RedirectHandler {
	return &RedirectHandler{
		linkService:   linkService,
		clickService:  clickService,
		mqProducer:    mqProducer,
		attrCfg:       attrCfg,
		secureCookies: secureCookies,
	}
}

// Redirect handles GET /:token
// @Summary Resolve an affiliate link
// @Description Redirects to the destination URL, recording the click and issuing attribution cookies. Every failure path degrades to a redirect to the fallback URL.
// @Tags links
// @Param token path string true "Link token"
// @Success 302
// @Router /:token [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	tok := c.Param("token")

	// Fail closed on malformed tokens before touching the store. Routine
	// scanner traffic, so no log either.
	if !token.Validate(tok) {
		metrics.RecordFallback("invalid_token")
		c.Redirect(http.StatusFound, h.attrCfg.FallbackURL)
		return
	}

	link, err := h.linkService.Resolve(c.Request.Context(), tok)
	if err != nil {
		if errors.Is(err, service.ErrLinkUnavailable) {
			log.Debug().Str("token", tok).Msg("Link unavailable")
			metrics.RecordFallback("unavailable")
		} else {
			log.Error().Err(err).Str("token", tok).Msg("Link lookup failed")
			metrics.RecordFallback("lookup_error")
		}
		c.Redirect(http.StatusFound, h.attrCfg.FallbackURL)
		return
	}

	visitorID, isReturning := attribution.ResolveVisitor(c.Request)

	visit := &model.Visit{
		VisitorID:     visitorID,
		IsReturning:   isReturning,
		IPHash:        ident.HashIP(util.ClientIP(c.Request), h.attrCfg.IPSalt),
		UserAgentHash: ident.HashUserAgent(c.Request.UserAgent()),
		Referer:       c.Request.Referer(),
	}

	// The destination is decided; tracking is best effort from here. The
	// context is detached so a client disconnect cannot cancel the
	// in-flight persistence and lose counts.
	trackCtx := context.WithoutCancel(c.Request.Context())
	result, err := h.clickService.Record(trackCtx, link, visit)
	if err != nil {
		log.Error().Err(err).
			Str("token", tok).
			Int64("link_id", link.ID).
			Msg("Failed to record click")
		metrics.RecordTrackingFailure()
	}

	if h.mqProducer != nil && result != nil {
		msg := &mq.ClickMessage{
			Token:         tok,
			LinkID:        link.ID,
			VisitorID:     visitorID,
			Referer:       visit.Referer,
			IPHash:        visit.IPHash,
			UserAgentHash: visit.UserAgentHash,
			IsUnique:      result.IsUnique,
			IsRevisit:     result.IsRevisit,
			ClickedAt:     time.Now().UTC(),
		}
		go func() {
			if err := h.mqProducer.SendClick(trackCtx, msg); err != nil {
				log.Error().Err(err).Str("token", tok).Msg("Failed to send click event to MQ")
			}
		}()
	}

	for _, cookie := range attribution.Cookies(visitorID, tok, link.WindowDays(h.attrCfg.DefaultWindowDays), h.secureCookies) {
		http.SetCookie(c.Writer, cookie)
	}

	metrics.RecordRedirect()
	c.Redirect(http.StatusFound, link.DestinationURL)
}
