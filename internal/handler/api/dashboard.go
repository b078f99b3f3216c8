// Package api exposes the dashboard over HTTP: login, watchlist management,
// ticker analysis and the sentiment index.
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"StockDash/internal/domain/models"
	"StockDash/internal/domain/repository"
	"StockDash/internal/session"
	xhttp "StockDash/pkg/http"
	xlogger "StockDash/pkg/logger"
)

const sessionCookie = "dash_session"

// DashboardHandler wires user actions into sessions and renders results as JSON.
type DashboardHandler struct {
	logger    *xlogger.Logger
	sessions  *session.Manager
	sentiment repository.SentimentFeed
}

func NewDashboardHandler(logger *xlogger.Logger, sessions *session.Manager, sentiment repository.SentimentFeed) *DashboardHandler {
	return &DashboardHandler{logger: logger, sessions: sessions, sentiment: sentiment}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api", h.withSession)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)

	authed := g.Group("", h.requireAuth)
	authed.GET("/watchlist", h.Watchlist)
	authed.POST("/watchlist", h.AddTicker)
	authed.POST("/watchlist/action", h.Action)
	authed.GET("/analysis", h.Analysis)
	authed.GET("/sentiment", h.Sentiment)
}

// withSession attaches the caller's session, creating one (and its cookie) on
// first contact. Each new session hydrates its own watchlist copy.
func (h *DashboardHandler) withSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			if s, ok := h.sessions.Get(cookie.Value); ok {
				c.Set("session", s)
				return next(c)
			}
		}

		s, err := h.sessions.Create(c.Request().Context())
		if err != nil {
			h.logger.Error("session create failed", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.InternalError("could not start session").WithError(err))
		}
		c.SetCookie(&http.Cookie{
			Name:     sessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
		})
		c.Set("session", s)
		return next(c)
	}
}

func (h *DashboardHandler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.session(c).Authenticated() {
			return xhttp.AppErrorResponse(c, xhttp.UnauthorizedError("login required"))
		}
		return next(c)
	}
}

func (h *DashboardHandler) session(c echo.Context) *session.Session {
	return c.Get("session").(*session.Session)
}

type loginRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// Login checks the shared secret. Failure is non-fatal: the client may retry.
func (h *DashboardHandler) Login(c echo.Context) error {
	req := &loginRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	s := h.session(c)
	if !s.Authenticate(req.Secret) {
		return xhttp.AppErrorResponse(c, xhttp.UnauthorizedError("wrong password"))
	}
	return xhttp.SuccessResponse(c, map[string]bool{"authenticated": true})
}

// Logout discards the caller's session and expires its cookie. The next
// request starts a fresh, unauthenticated session.
func (h *DashboardHandler) Logout(c echo.Context) error {
	h.sessions.Drop(h.session(c).ID)
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return xhttp.SuccessResponse(c, map[string]bool{"authenticated": false})
}

type watchlistView struct {
	Tickers  []string `json:"tickers"`
	Selected string   `json:"selected,omitempty"`
}

func (h *DashboardHandler) Watchlist(c echo.Context) error {
	store := h.session(c).Store()
	return xhttp.SuccessResponse(c, watchlistView{
		Tickers:  store.Tickers(),
		Selected: store.Selected(),
	})
}

type addTickerRequest struct {
	Symbol string `json:"symbol" validate:"required,max=12"`
}

func (h *DashboardHandler) AddTicker(c echo.Context) error {
	req := &addTickerRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	s := h.session(c)
	added, err := s.AddTicker(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("watchlist persist failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("could not persist watchlist").WithError(err))
	}

	store := s.Store()
	resp := watchlistView{Tickers: store.Tickers(), Selected: store.Selected()}
	if added {
		return xhttp.CreatedResponse(c, resp)
	}
	return xhttp.SuccessResponse(c, resp)
}

type actionRequest struct {
	Action string `json:"action" validate:"required,oneof=move_up move_down delete select"`
	Index  int    `json:"index" validate:"gte=0"`
	Ticker string `json:"ticker" validate:"max=12"`
}

// Action parses the request into the tagged Action variant once, here at the
// boundary, and hands it to the session.
func (h *DashboardHandler) Action(c echo.Context) error {
	req := &actionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	s := h.session(c)
	action := models.Action{
		Kind:   models.ActionKind(req.Action),
		Index:  req.Index,
		Ticker: req.Ticker,
	}
	if err := s.HandleAction(c.Request().Context(), action); err != nil {
		h.logger.Error("watchlist persist failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("could not persist watchlist").WithError(err))
	}

	store := s.Store()
	return xhttp.SuccessResponse(c, watchlistView{
		Tickers:  store.Tickers(),
		Selected: store.Selected(),
	})
}

type analysisView struct {
	Result *models.AnalysisResult `json:"result"`
}

// Analysis renders the view for the current selection. No selection yields an
// empty view; an upstream failure is surfaced as a message without breaking
// the session.
func (h *DashboardHandler) Analysis(c echo.Context) error {
	s := h.session(c)

	res, err := s.RenderView(c.Request().Context())
	if err != nil {
		var ue *models.UpstreamError
		if errors.As(err, &ue) {
			h.logger.Warn("analysis failed",
				xlogger.String("ticker", ue.Ticker),
				xlogger.String("kind", string(ue.Kind)),
				xlogger.Error(err),
			)
			appErr := xhttp.BadGatewayError(ue.Cause()).WithParam("ticker", ue.Ticker)
			if ue.Kind == models.UpstreamNotFound {
				appErr = xhttp.NotFoundErrorf("unknown symbol %s", ue.Ticker).WithParam("ticker", ue.Ticker)
			}
			return xhttp.AppErrorResponse(c, appErr)
		}
		h.logger.Error("analysis error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, analysisView{Result: res})
}

type sentimentView struct {
	Latest *models.SentimentPoint  `json:"latest"`
	Series []models.SentimentPoint `json:"series"`
}

// Sentiment returns the latest sentiment observation plus the whole series.
func (h *DashboardHandler) Sentiment(c echo.Context) error {
	series, err := h.sentiment.Series(c.Request().Context())
	if err != nil {
		h.logger.Warn("sentiment fetch failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("sentiment index unavailable").WithError(err))
	}

	view := sentimentView{Series: series}
	if len(series) > 0 {
		view.Latest = &series[len(series)-1]
	}
	return xhttp.SuccessResponse(c, view)
}
