// Package server exposes the estimators over HTTP. Every request carries its
// own corpus and parameters and is computed from scratch, so the server keeps
// no state between requests.
package server

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jules0707/ai50-projects-2023-x-pagerank/graph"
	"github.com/jules0707/ai50-projects-2023-x-pagerank/rank"
	"github.com/jules0707/ai50-projects-2023-x-pagerank/utils"
)

// Config holds the defaults applied when a request omits a parameter.
type Config struct {
	Damping       float64
	Samples       int
	Tolerance     float64
	MaxIterations int
	ProbeCheck    bool
}

type Server struct {
	cfg Config
}

// ComputeRequest is the body of POST /pagerank. Damping and Samples fall back
// to the server defaults when omitted.
type ComputeRequest struct {
	Damping *float64            `json:"damping,omitempty"`
	Samples *int                `json:"samples,omitempty"`
	Corpus  map[string][]string `json:"corpus"`
}

type ComputeResponse struct {
	Job       string      `json:"job"`
	Damping   float64     `json:"damping"`
	Samples   int         `json:"samples"`
	Sampling  rank.Vector `json:"sampling"`
	Iteration rank.Vector `json:"iteration"`
}

func New(cfg Config) *Server {
	if cfg.Damping == 0 {
		cfg.Damping = rank.DefaultDamping
	}
	if cfg.Samples == 0 {
		cfg.Samples = rank.DefaultSamples
	}
	return &Server{cfg: cfg}
}

// Echo builds the routed echo instance for this server.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.GET("/health", s.Health)
	e.POST("/pagerank", s.Compute)
	return e
}

func (s *Server) Health(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// Compute runs both estimators over the uploaded corpus.
func (s *Server) Compute(c echo.Context) error {
	var req ComputeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse request body")
	}
	if len(req.Corpus) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "corpus is empty")
	}
	damping := s.cfg.Damping
	if req.Damping != nil {
		damping = *req.Damping
	}
	samples := s.cfg.Samples
	if req.Samples != nil {
		samples = *req.Samples
	}

	job, err := gonanoid.New()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create job id")
	}
	utils.ServerLog("Job %s: %d pages, damping %.2f, %d samples", job, len(req.Corpus), damping, samples)

	g := graph.New(req.Corpus)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sampled, err := rank.Sample(g, damping, samples, rng)
	if err != nil {
		return httpError(err)
	}
	opts := rank.Options{
		Tolerance:     s.cfg.Tolerance,
		MaxIterations: s.cfg.MaxIterations,
		Probe:         s.cfg.ProbeCheck,
	}
	iterated, err := rank.Iterate(g, damping, opts)
	if err != nil {
		return httpError(err)
	}
	utils.ServerLog("Job %s: done", job)

	return c.JSON(http.StatusOK, ComputeResponse{
		Job:       job,
		Damping:   damping,
		Samples:   samples,
		Sampling:  sampled,
		Iteration: iterated,
	})
}

func httpError(err error) error {
	switch {
	case errors.Is(err, rank.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, rank.ErrNoConvergence):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
