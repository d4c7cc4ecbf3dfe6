package router

import "github.com/gin-gonic/gin"

// Module is a feature slice that knows how to mount its own routes.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects modules and mounts them all under the /api group.
type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts every added module. Call once, after all Adds.
func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
