package content_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inzider/internal/repositories"
	"inzider/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideGoToRepo,
	provideTripService, provideGoToService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideGoToRepo(db *gorm.DB) repositories.GoToRepository {
	return repositories.NewGoToRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, log *zap.Logger) services.TripServiceInterface {
	return services.NewTripService(tripRepo, log)
}

func provideGoToService(goToRepo repositories.GoToRepository, log *zap.Logger) services.GoToServiceInterface {
	return services.NewGoToService(goToRepo, log)
}
