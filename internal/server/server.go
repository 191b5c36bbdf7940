// Package server exposes the query pipeline over HTTP. The transport stays
// thin: all pipeline behavior lives in internal/rag.
package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/helper"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// Pipeline is the service surface the HTTP layer fronts.
type Pipeline interface {
	Query(ctx context.Context, question string) (models.QueryResponse, error)
	Health() models.Health
}

// Server is the HTTP transport over the query pipeline.
type Server struct {
	echo     *echo.Echo
	pipeline Pipeline
}

// New builds the echo app with routes mirroring the service surface.
func New(pipeline Pipeline) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{echo: e, pipeline: pipeline}
	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)
	e.POST("/query", s.handleQuery)
	return s
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Legal Query AI Backend",
		"version": "1.0.0",
		"status":  "running",
		"features": []string{
			"RAG-based legal analysis",
			"Dual perspective responses",
			"Structured 5-line format",
			"Indian legal context",
			"Clean text output (no markdown)",
		},
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	health := s.pipeline.Health()
	status := "unhealthy"
	if health.PipelineReady {
		status = "healthy"
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     status,
		"components": health,
	})
}

func (s *Server) handleQuery(c echo.Context) error {
	var req models.QueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Question) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question is required")
	}

	requestID, _ := helper.GenerateUUID()
	logger := log.With().Str("request_id", requestID).Logger()

	resp, err := s.pipeline.Query(c.Request().Context(), req.Question)
	if err != nil {
		logger.Error().Err(err).Msg("Query failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Error processing query")
	}
	logger.Info().Msg("Query processed successfully")
	return c.JSON(http.StatusOK, resp)
}
