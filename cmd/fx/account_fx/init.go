package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inzider/internal/repositories"
	"inzider/internal/services"
)

var Module = fx.Provide(
	provideCreatorRepo, provideUserRepo,
	provideCreatorService, provideUserService, provideAuthService)

func provideCreatorRepo(db *gorm.DB) repositories.CreatorRepository {
	return repositories.NewCreatorRepository(db)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideCreatorService(creatorRepo repositories.CreatorRepository, log *zap.Logger) services.CreatorServiceInterface {
	return services.NewCreatorService(creatorRepo, log)
}

func provideUserService(userRepo repositories.UserRepository, log *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, log)
}

func provideAuthService(creatorRepo repositories.CreatorRepository, userRepo repositories.UserRepository, log *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(creatorRepo, userRepo, log)
}
