package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zanzibar-explore/tours-backend/api"
	"github.com/zanzibar-explore/tours-backend/config"
	"github.com/zanzibar-explore/tours-backend/internal/service/contact"
	"github.com/zanzibar-explore/tours-backend/internal/service/gallery"
	"github.com/zanzibar-explore/tours-backend/internal/service/tours"
	"github.com/zanzibar-explore/tours-backend/internal/service/transfers"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	tourSvc tours.TourUseCase,
	transferSvc transfers.TransferUseCase,
	contactSvc contact.ContactUseCase,
	gallerySvc gallery.GalleryUseCase,
) error {
	engine := newEngine(cfg, tourSvc, transferSvc, contactSvc, gallerySvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
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

func newEngine(
	cfg *config.Config,
	tourSvc tours.TourUseCase,
	transferSvc transfers.TransferUseCase,
	contactSvc contact.ContactUseCase,
	gallerySvc gallery.GalleryUseCase,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), api.CORS(), api.Metrics())

	root := engine.Group("/api")
	root.GET("/", welcome)
	root.GET("/health", health)

	api.NewTourHandler(tourSvc).Register(root.Group("/tours"))
	api.NewTransferHandler(transferSvc).Register(root.Group("/transfers"))
	api.NewContactHandler(contactSvc).Register(root.Group("/contact"))
	api.NewGalleryHandler(gallerySvc).Register(root.Group("/gallery"))

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		engine.GET("/docs", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/openapi.json")
		})
	}

	return engine
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Zanzibar Explore Tours API - Welcome!"})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "API is running"})
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
