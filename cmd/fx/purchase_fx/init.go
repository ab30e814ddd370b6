package purchase_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inzider/internal/repositories"
	"inzider/internal/services"
)

var Module = fx.Provide(
	providePurchaseRepo, provideDiscountRepo, provideRefundRepo,
	providePurchaseService, provideDiscountService, provideRefundService)

func providePurchaseRepo(db *gorm.DB) repositories.PurchaseRepository {
	return repositories.NewPurchaseRepository(db)
}

func provideDiscountRepo(db *gorm.DB) repositories.DiscountRepository {
	return repositories.NewDiscountRepository(db)
}

func provideRefundRepo(db *gorm.DB) repositories.RefundRepository {
	return repositories.NewRefundRepository(db)
}

func providePurchaseService(purchaseRepo repositories.PurchaseRepository, log *zap.Logger) services.PurchaseServiceInterface {
	return services.NewPurchaseService(purchaseRepo, log)
}

func provideDiscountService(discountRepo repositories.DiscountRepository, log *zap.Logger) services.DiscountServiceInterface {
	return services.NewDiscountService(discountRepo, log)
}

func provideRefundService(
	refundRepo repositories.RefundRepository,
	purchaseRepo repositories.PurchaseRepository,
	purchases services.PurchaseServiceInterface,
	log *zap.Logger,
) services.RefundServiceInterface {
	return services.NewRefundService(refundRepo, purchaseRepo, purchases, log)
}
