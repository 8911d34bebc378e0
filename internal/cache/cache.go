package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prasdika/travelbooking/internal/models"
)

// Cache stores raw upstream catalog payloads. Options are always rebuilt and
// repriced per search, so caching stops at the provider records.
type Cache interface {
	GetHotels(ctx context.Context, destination string) ([]models.Hotel, bool)
	SetHotels(ctx context.Context, destination string, hotels []models.Hotel) error
	GetFlights(ctx context.Context, departureAirport, destination string) ([]models.Flight, bool)
	SetFlights(ctx context.Context, departureAirport, destination string, flights []models.Flight) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) GetHotels(ctx context.Context, destination string) ([]models.Hotel, bool) {
	var hotels []models.Hotel
	if !c.get(ctx, hotelsKey(destination), &hotels) {
		return nil, false
	}
	return hotels, true
}

func (c *RedisCache) SetHotels(ctx context.Context, destination string, hotels []models.Hotel) error {
	return c.set(ctx, hotelsKey(destination), hotels)
}

func (c *RedisCache) GetFlights(ctx context.Context, departureAirport, destination string) ([]models.Flight, bool) {
	var flights []models.Flight
	if !c.get(ctx, flightsKey(departureAirport, destination), &flights) {
		return nil, false
	}
	return flights, true
}

func (c *RedisCache) SetFlights(ctx context.Context, departureAirport, destination string, flights []models.Flight) error {
	return c.set(ctx, flightsKey(departureAirport, destination), flights)
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) get(ctx context.Context, key string, out any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func hotelsKey(destination string) string {
	return "catalog:hotels:" + strings.ToUpper(destination)
}

func flightsKey(departureAirport, destination string) string {
	return "catalog:flights:" + strings.ToUpper(departureAirport) + ":" + strings.ToUpper(destination)
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) GetHotels(ctx context.Context, destination string) ([]models.Hotel, bool) {
	return nil, false
}

func (c *NoOpCache) SetHotels(ctx context.Context, destination string, hotels []models.Hotel) error {
	return nil
}

func (c *NoOpCache) GetFlights(ctx context.Context, departureAirport, destination string) ([]models.Flight, bool) {
	return nil, false
}

func (c *NoOpCache) SetFlights(ctx context.Context, departureAirport, destination string, flights []models.Flight) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}
