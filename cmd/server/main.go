package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/prasdika/travelbooking/internal/booking"
	"github.com/prasdika/travelbooking/internal/cache"
	"github.com/prasdika/travelbooking/internal/catalog"
	"github.com/prasdika/travelbooking/internal/handler"
	"github.com/prasdika/travelbooking/internal/hub"
	"github.com/prasdika/travelbooking/internal/manager"
	"github.com/prasdika/travelbooking/internal/pricing"
	"github.com/prasdika/travelbooking/internal/random"
	"github.com/prasdika/travelbooking/internal/ratelimit"
)

type Config struct {
	Port            string
	APIKey          string
	HotelsURL       string
	FlightsURL      string
	UpstreamTimeout time.Duration
	CacheEnabled    bool
	RedisHost       string
	RedisPort       string
	RedisTTL        time.Duration
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := loadConfig()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewUpstreamLimiterWithDefaults()
	rateLimiter.SetUpstreamLimit(catalog.UpstreamHotels, 20, 30)
	rateLimiter.SetUpstreamLimit(catalog.UpstreamFlights, 15, 25)

	var catalogCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		catalogCache = redisCache
		log.Printf("Redis catalog cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		catalogCache = cache.NewNoOpCache()
		log.Println("Catalog cache disabled")
	}

	gateway := catalog.NewClient(catalog.Config{
		HotelsURL:  cfg.HotelsURL,
		FlightsURL: cfg.FlightsURL,
		Timeout:    cfg.UpstreamTimeout,
	}, rateLimiter, catalogCache)

	rng := random.NewSource(time.Now().UnixNano())
	store := booking.NewStore()
	ledger := booking.NewLedger(store, rng)
	builder := pricing.NewBuilder(rng)
	bookingHub := hub.New()

	mgr := manager.New(gateway, builder, ledger, store, bookingHub, manager.Config{
		ConfirmUnit: time.Second,
	})

	travelHandler := handler.NewTravelHandler(mgr)

	api := e.Group("/api/v1")
	if cfg.APIKey != "" {
		api.Use(apiKeyMiddleware(cfg.APIKey))
	} else {
		log.Println("API_KEY not set, authentication disabled")
	}

	api.POST("/search", travelHandler.Search)
	api.POST("/book", travelHandler.Book)
	api.GET("/checkstatus", travelHandler.CheckStatus)

	e.GET("/ws/bookings", bookingHub.Handler())
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel booking server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		APIKey:          getEnv("API_KEY", ""),
		HotelsURL:       getEnv("HOTELS_API_URL", "http://localhost:9090/hotels?destination={destinationCode}"),
		FlightsURL:      getEnv("FLIGHTS_API_URL", "http://localhost:9091/flights?from={departureAirport}&to={arrivalAirport}"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", false),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisTTL:        getEnvDuration("REDIS_TTL", 5*time.Minute),
	}
}

// apiKeyMiddleware compares the raw Authorization header against the
// configured key, the same contract the upstream dashboard client uses.
func apiKeyMiddleware(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != apiKey {
				log.Println("Unauthorized request. Invalid or missing API key.")
				return c.String(http.StatusUnauthorized, "Unauthorized. Invalid API Key.")
			}
			return next(c)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
