package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/autohub/fleetrental/api"
	"github.com/autohub/fleetrental/config"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Vehicles  *api.VehicleHandler
	Bookings  *api.BookingHandler
	Rentals   *api.RentalHandler
	Customers *api.CustomerHandler
}

// NewRouter builds the gin engine with every resource registered under /api.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiGroup := router.Group("/api")
	h.Vehicles.Register(apiGroup.Group("/vehicles"))
	h.Bookings.Register(apiGroup.Group("/bookings"))
	h.Rentals.Register(apiGroup.Group("/rentals"))
	h.Customers.Register(apiGroup.Group("/customers"))

	return router
}

// Run serves HTTP and blocks until the context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, router *gin.Engine) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
