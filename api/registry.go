package api

import (
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/core/registry"
)

var mu sync.Mutex

// ModuleFunc registers routes on the authenticated /api group.
type ModuleFunc func(g *echo.Group, db *gorm.DB)

// RouteFunc registers routes on the root Echo instance (public pages,
// health checks, GraphQL).
type RouteFunc func(e *echo.Echo, db *gorm.DB)

func register(key string, what string, appendTo func()) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(key) {
		panic("api/registry: " + what + " locked (register only during init)")
	}
	appendTo()
}

// RegisterModule adds an /api module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	register(registry.KeyRegistryAPI, "API modules", func() {
		list := getModules()
		registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, append(list, fn))
	})
}

// RegisterRoute adds a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	register(registry.KeyRegistryRoutes, "routes", func() {
		list := getRoutes()
		registry.GlobalRegistry.SetGlobal(registry.KeyRegistryRoutes, append(list, fn))
	})
}

// RegisterGET is shorthand for a simple public GET route.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *gorm.DB) {
		e.GET(path, handler)
	})
}

// RegisterPOST is shorthand for a simple public POST route.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *gorm.DB) {
		e.POST(path, handler)
	})
}

// RegisterHTMLModule registers an HTML route module (alias for RegisterRoute).
func RegisterHTMLModule(fn RouteFunc) {
	RegisterRoute(fn)
}

func getModules() []ModuleFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryAPI); ok && v != nil {
		return v.([]ModuleFunc)
	}
	return nil
}

func getRoutes() []RouteFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryRoutes); ok && v != nil {
		return v.([]RouteFunc)
	}
	return nil
}

// ApplyModules calls all registered /api modules and locks the registry.
func ApplyModules(g *echo.Group, db *gorm.DB) {
	for _, fn := range getModules() {
		fn(g, db)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// ApplyRoutes calls all registered root-level routes and locks the registry.
func ApplyRoutes(e *echo.Echo, db *gorm.DB) {
	for _, fn := range getRoutes() {
		fn(e, db)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}
