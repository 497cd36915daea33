package router

import (
	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/internal/container"
	repo "github.com/oksasatya/party-planner/internal/domain/repository"
	"github.com/oksasatya/party-planner/internal/infrastructure/mongodb"
	handlers "github.com/oksasatya/party-planner/internal/interface/http"
	"github.com/oksasatya/party-planner/internal/router/modules"
)

// InitModules builds services and handlers from the container singletons
// and registers every feature module with the router registry. Called
// once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongoDB()

	users := mongodb.NewUserRepository(db)
	authSvc := application.NewAuthService(users, logger, cfg.BcryptCost, cfg.AccessTokenBytes)
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), authSvc))

	catalogs := make(map[string]repo.CatalogRepository, len(mongodb.CatalogCollections))
	for _, name := range mongodb.CatalogCollections {
		catalogs[name] = mongodb.NewCatalogRepository(db, name)
	}
	catalogSvc := application.NewCatalogService(catalogs, logger)
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(catalogSvc, logger)))

	projectSvc := application.NewProjectService(mongodb.NewProjectRepository(db), logger)
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), authSvc))

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetMongoClient())))
}
