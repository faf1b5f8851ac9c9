package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"pawhaven/api-gateway/config"
	"pawhaven/api-gateway/health"
	"pawhaven/api-gateway/middleware"
	"pawhaven/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool
	StrictLimit bool // Apply the tight per-IP rate limit
}

// Routes holds all route definitions. The catalog stays public; the API
// still enforces per-operation rules (ownership, confirmation) itself.
var Routes = []RouteDefinition{
	{
		Prefix:      "/auth",
		ServiceName: "api",
		Description: "Registration, login and logout",
		RequireAuth: false,
		StrictLimit: true,
	},
	{
		Prefix:      "/pets",
		ServiceName: "api",
		Description: "Pet catalog (browse public, mutations authenticated downstream)",
		RequireAuth: false,
	},
	{
		Prefix:      "/users",
		ServiceName: "api",
		Description: "Account profile",
		RequireAuth: true,
	},
	{
		Prefix:      "/profile",
		ServiceName: "api",
		Description: "Profile stats and favorites",
		RequireAuth: true,
	},
	{
		Prefix:      "/uploads",
		ServiceName: "api",
		Description: "Pet image uploads",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager, redisClient *redis.Client) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Create health checker
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllServices(ctx))
	})

	// Circuit breaker and load balancer stats
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		lbStats := make(map[string]interface{})
		for name, lb := range reverseProxy.GetLoadBalancers() {
			lbStats[name] = lb.GetStats()
		}

		return c.JSON(fiber.Map{
			"circuit_breakers": cbManager.GetAllStats(),
			"load_balancers":   lbStats,
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "PawHaven API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy, redisClient)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy, redisClient *redis.Client) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler

	if route.StrictLimit && redisClient != nil {
		middlewares = append(middlewares, middleware.AuthRateLimiter(redisClient))
	}
	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	} else {
		// Forward the identity when present so the API can personalize
		middlewares = append(middlewares, middleware.OptionalAuthMiddleware())
	}

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, append(middlewares, handler)...)
}
