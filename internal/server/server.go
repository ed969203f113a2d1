// Package server exposes chart computation over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"soultether/internal/chart"
	"soultether/internal/config"
	apperrors "soultether/internal/errors"
	"soultether/internal/ephemeris"
	"soultether/internal/geocode"
	"soultether/internal/geometry"
	"soultether/internal/logging"
	"soultether/internal/models"
	"soultether/internal/reading"
	"soultether/internal/store"
)

// Server wires the computation pipeline behind the HTTP surface.
type Server struct {
	cfg       *config.Config
	logger    zerolog.Logger
	engine    *gin.Engine
	source    ephemeris.Source
	geocoder  *geocode.Chain
	renderer  *reading.Renderer
	narrative *reading.NarrativeClient
	log       store.ReadingLog
}

// Options carries the collaborators a Server needs. Narrative and Log may be
// nil; the corresponding features are skipped.
type Options struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Source    ephemeris.Source
	Geocoder  *geocode.Chain
	Renderer  *reading.Renderer
	Narrative *reading.NarrativeClient
	Log       store.ReadingLog
}

// New creates a Server with routes registered.
func New(opts Options) *Server {
	if opts.Config.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       opts.Config,
		logger:    opts.Logger,
		engine:    gin.New(),
		source:    opts.Source,
		geocoder:  opts.Geocoder,
		renderer:  opts.Renderer,
		narrative: opts.Narrative,
		log:       opts.Log,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(corsMiddleware())
	s.setupRoutes()
	return s
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/calculate_reading", s.handleCalculateReading)
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info().Str("addr", addr).Msg("starting server")
	return s.engine.Run(addr)
}

// Handler exposes the underlying engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "SoulTether API",
	})
}

// readingRequest is the calculate_reading request body. Hour and minute keep
// pointer types so absent fields get defaults while 0 stays distinguishable.
type readingRequest struct {
	BirthDate string `json:"birth_date"`
	Hour      *int   `json:"hour"`
	Minute    *int   `json:"minute"`
	IsAM      *bool  `json:"is_am"`
	Location  string `json:"location"`
}

type coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type chartData struct {
	Birth       string                               `json:"birth"`
	Location    string                               `json:"location"`
	Coordinates coordinates                          `json:"coordinates"`
	Ascendant   string                               `json:"ascendant"`
	Midheaven   string                               `json:"midheaven"`
	Planets     map[models.Body]*models.PlanetRecord `json:"planets"`
	Fidelity    models.Fidelity                      `json:"fidelity"`
	FOLHits     int                                  `json:"fol_hits"`
}

func (s *Server) handleCalculateReading(c *gin.Context) {
	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	subjectTime, err := resolveBirthTime(req)
	if err != nil {
		s.fail(c, err)
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		s.fail(c, &apperrors.ValidationError{Field: "location", Message: "location is required"})
		return
	}

	ctx := logging.WithLogger(c.Request.Context(), logging.WithLocation(s.logger, req.Location))

	loc, err := s.geocoder.Lookup(ctx, req.Location)
	if err != nil {
		s.fail(c, err)
		return
	}

	subject := models.Subject{
		Birth:     subjectTime,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}

	record, err := chart.Compute(subject, s.source)
	if err != nil {
		s.fail(c, err)
		return
	}
	record.Location = req.Location

	hits := geometry.Detect(record.Planets, geometry.Nodes(), s.cfg.Chart.AlignmentOrb)

	text, err := s.renderer.Render(record, hits)
	if err != nil {
		s.fail(c, err)
		return
	}

	if s.narrative != nil {
		if prose, nerr := s.narrative.Narrate(ctx, text, hits); nerr == nil {
			text = prose
		} else {
			s.logger.Warn().Err(nerr).Msg("narrative generation failed, serving template reading")
		}
	}

	s.logReading(record, hits, text)
	logging.LogChart(s.logger, record.Birth, string(record.Fidelity), len(record.Aspects), len(hits))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reading": text,
		"chart_data": chartData{
			Birth:       record.Birth,
			Location:    req.Location,
			Coordinates: coordinates{Lat: loc.Latitude, Lon: loc.Longitude},
			Ascendant:   record.Ascendant,
			Midheaven:   record.Midheaven,
			Planets:     record.Planets,
			Fidelity:    record.Fidelity,
			FOLHits:     len(hits),
		},
	})
}

// logReading persists the served reading. Failures are logged, never surfaced.
func (s *Server) logReading(record *models.ChartRecord, hits []models.AlignmentHit, text string) {
	if s.log == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entry := &store.ReadingEntry{
		Timestamp: time.Now().UTC(),
		Birth:     record.Birth,
		Location:  record.Location,
		Fidelity:  record.Fidelity,
		Hits:      hits,
		Reading:   text,
	}
	if err := s.log.SaveReading(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Msg("failed to log reading")
	}
}

// resolveBirthTime validates the date fields and applies AM/PM
// disambiguation: for hour <= 12, PM adds 12 except at 12 itself, and
// 12 AM becomes hour 0. Hours above 12 pass through as 24-hour values.
func resolveBirthTime(req readingRequest) (time.Time, error) {
	if req.BirthDate == "" {
		return time.Time{}, &apperrors.ValidationError{Field: "birth_date", Message: "birth_date is required"}
	}

	hour := 12
	if req.Hour != nil {
		hour = *req.Hour
	}
	minute := 0
	if req.Minute != nil {
		minute = *req.Minute
	}
	isAM := true
	if req.IsAM != nil {
		isAM = *req.IsAM
	}

	if hour < 0 || hour > 23 {
		return time.Time{}, &apperrors.ValidationError{Field: "hour", Value: fmt.Sprint(hour), Message: "hour must be 0-23"}
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, &apperrors.ValidationError{Field: "minute", Value: fmt.Sprint(minute), Message: "minute must be 0-59"}
	}

	if hour <= 12 {
		if !isAM && hour != 12 {
			hour += 12
		} else if isAM && hour == 12 {
			hour = 0
		}
	}

	stamp := fmt.Sprintf("%s %02d:%02d", req.BirthDate, hour, minute)
	t, err := time.Parse(models.BirthTimeLayout, stamp)
	if err != nil {
		return time.Time{}, &apperrors.ValidationError{
			Field:   "birth_date",
			Value:   req.BirthDate,
			Message: "birth_date must be YYYY-MM-DD",
		}
	}
	return t, nil
}

// fail writes the uniform error envelope. All failures map to 400, keeping
// the service itself alive across bad requests and upstream outages.
func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
