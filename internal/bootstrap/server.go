package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fastays/fastays/api"
	"github.com/fastays/fastays/config"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run assembles the router, starts the HTTP server and blocks until the
// context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, authHandler *api.AuthHandler, flightHandler *api.FlightHandler, bookingHandler *api.BookingHandler, metricsHandler http.Handler) error {
	router := gin.Default()

	authHandler.Register(router.Group("/auth"))
	flightHandler.Register(router.Group("/flights"))
	bookingHandler.Register(router.Group("/bookings"))

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/swagger.json"),
		)))
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
