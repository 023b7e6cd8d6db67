package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/cli/browser"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// newRouter builds the gin engine with rate limiting and all API routes.
func newRouter(cfg config, h *Handler) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies(nil)
	router.Use(rateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	h.registerRoutes(router)
	return router
}

// withCORS answers preflight requests before they reach the gin engine.
func withCORS(cfg config, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(next)
}

func main() {
	log.SetPrefix("lg/wellness-go-api: ")
	log.SetFlags(0)

	// .env is optional for the server; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env loaded: %v", err)
	}
	cfg := loadConfig()

	h := newHandler(cfg)
	if h.accessKeyHash == nil {
		log.Printf("[main] ACCESS_KEY_HASH not set, API is unauthenticated")
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Fatalf("[main] listen %s: %v", cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           withCORS(cfg, newRouter(cfg, h)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	url := fmt.Sprintf("http://%s/api/foods", ln.Addr())
	fmt.Println("Listening on", url)
	if cfg.OpenBrowser {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("[main] open browser: %v", err)
		}
	}

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
