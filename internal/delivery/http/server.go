package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	account_http "social-feed-service/internal/delivery/http/account"
	feed_http "social-feed-service/internal/delivery/http/feed"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
	"social-feed-service/internal/middleware"
)

type Server struct {
	accountHTTPService *account_http.AccountHTTPService
	feedHTTPService    *feed_http.FeedHTTPService
	server             *http.Server
	address            string
	port               int
	log                *logger.Logger
	metrics            metrics.MetricsProvider
}

func NewServer(
	accountHTTPService *account_http.AccountHTTPService,
	feedHTTPService *feed_http.FeedHTTPService,
	address string,
	port int,
	log *logger.Logger,
	provider metrics.MetricsProvider,
) *Server {
	return &Server{
		accountHTTPService: accountHTTPService,
		feedHTTPService:    feedHTTPService,
		address:            address,
		port:               port,
		log:                log,
		metrics:            provider,
	}
}

func (s *Server) Run() error {
	router := mux.NewRouter()
	router.Use(middleware.Recovery(s.log))
	router.Use(middleware.Logging(s.log))
	router.Use(middleware.Instrument(s.metrics))

	s.accountHTTPService.RegisterRoutes(router)
	s.feedHTTPService.RegisterRoutes(router)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
