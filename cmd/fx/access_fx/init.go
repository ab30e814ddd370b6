package access_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inzider/internal/repositories"
	"inzider/internal/services"
)

var Module = fx.Provide(
	provideGrantRepo, provideGrantService, provideAccessService)

func provideGrantRepo(db *gorm.DB) repositories.PackageAccessRepository {
	return repositories.NewPackageAccessRepository(db)
}

func provideGrantService(grantRepo repositories.PackageAccessRepository, mail services.IMailService, log *zap.Logger) services.PackageAccessServiceInterface {
	return services.NewPackageAccessService(grantRepo, mail, log)
}

func provideAccessService(
	purchaseRepo repositories.PurchaseRepository,
	tripRepo repositories.TripRepository,
	goToRepo repositories.GoToRepository,
	log *zap.Logger,
) services.AccessServiceInterface {
	return services.NewAccessService(purchaseRepo, tripRepo, goToRepo, log)
}
