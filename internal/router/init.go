package router

import (
	"github.com/wanderplan/wanderplan/internal/application"
	"github.com/wanderplan/wanderplan/internal/container"
	pginfra "github.com/wanderplan/wanderplan/internal/infrastructure/postgres"
	handlers "github.com/wanderplan/wanderplan/internal/interface/http"
	"github.com/wanderplan/wanderplan/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	itineraryRepo := pginfra.NewItineraryRepository(pool)
	collaboratorRepo := pginfra.NewCollaboratorRepository(pool)
	itemRepo := pginfra.NewItemRepository(pool)

	authorizer := application.NewAuthorizer(itineraryRepo, collaboratorRepo)

	userSvc := application.NewUserService(
		userRepo,
		jwt,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESUsersIndex,
	)
	itinerarySvc := application.NewItineraryService(
		authorizer,
		itineraryRepo,
		itemRepo,
		logger,
		container.GetES(),
		cfg.ESItinerariesIndex,
		container.GetGCS(),
		cfg.GCSBucket,
	)
	collaboratorSvc := application.NewCollaboratorService(
		authorizer,
		collaboratorRepo,
		userRepo,
		container.GetRabbitPub(),
		logger,
		cfg.InviteURL,
		cfg.MailSendEnabled,
	)
	itemSvc := application.NewItemService(authorizer, itemRepo, logger)

	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	itineraryHandler := handlers.NewItineraryHandler(itinerarySvc, logger)
	collaboratorHandler := handlers.NewCollaboratorHandler(collaboratorSvc, logger)
	itemHandler := handlers.NewItemHandler(itemSvc, logger)

	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewItineraryModule(itineraryHandler, jwt))
	r.Add(modules.NewCollaboratorModule(collaboratorHandler, jwt))
	r.Add(modules.NewItemModule(itemHandler, jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
