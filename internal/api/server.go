package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/logger"
)

var errUnknownPreset = errors.New("api: unknown preset")

// Server exposes the distance engine over HTTP. Calculators are built once
// per preset and shared, memoising the radial distances of recent
// redshifts (distance.DefaultMemoSize of them).
type Server struct {
	log           *logger.Logger
	defaultPreset string
	workers       int

	mu    sync.Mutex
	calcs map[string]*distance.Calculator
}

func NewServer(log *logger.Logger, defaultPreset string, workers int) *Server {
	return &Server{
		log:           logger.OrNop(log),
		defaultPreset: defaultPreset,
		workers:       workers,
		calcs:         make(map[string]*distance.Calculator),
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))

	r.GET("/healthz", s.health)

	v1 := r.Group("/v1")
	{
		v1.GET("/presets", s.presets)
		v1.GET("/distances", s.distances)
		v1.GET("/density", s.density)
	}
	return r
}

func (s *Server) cosmology(preset string) (*cosmology.FLRW, error) {
	calc, err := s.calculator(preset)
	if err != nil {
		return nil, err
	}
	return calc.Cosmology(), nil
}

func (s *Server) calculator(preset string) (*distance.Calculator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if calc, ok := s.calcs[preset]; ok {
		return calc, nil
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", errUnknownPreset, preset)
	}
	cosmo, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	calc := distance.New(cosmo, distance.WithMemo(), distance.WithWorkers(s.workers))
	s.calcs[preset] = calc
	return calc, nil
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
