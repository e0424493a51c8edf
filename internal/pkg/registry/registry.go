package registry

import (
	"sort"

	"blog_api/internal/pkg/uploader"
	"blog_api/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ModuleContext carries the shared handles a module needs at startup.
// Uploader may be nil when object storage is not configured.
type ModuleContext struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Cache    cache.CacheService
	Uploader uploader.Uploader
	Router   *gin.Engine
}

// Module is a self-contained domain module.
type Module interface {
	// Name returns the module name.
	Name() string

	// Init wires repositories, services and routes.
	Init(ctx *ModuleContext) error

	// Priority orders initialization; lower runs first.
	Priority() int
}

var moduleRegistry = make(map[string]Module)

// Register adds a module; called from each module's init().
func Register(module Module) {
	moduleRegistry[module.Name()] = module
}

// InitModules initializes every registered module in priority order.
func InitModules(ctx *ModuleContext) error {
	modules := make([]Module, 0, len(moduleRegistry))
	for _, m := range moduleRegistry {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Priority() < modules[j].Priority()
	})

	for _, module := range modules {
		if err := module.Init(ctx); err != nil {
			return err
		}
	}
	return nil
}
