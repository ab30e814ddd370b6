package controllers_fx

import (
	"go.uber.org/fx"

	"inzider/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCreatorController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewGoToController),
	fx.Provide(controllers.NewPurchaseController),
	fx.Provide(controllers.NewDiscountController),
	fx.Provide(controllers.NewRefundController),
	fx.Provide(controllers.NewAccessController),
	fx.Provide(controllers.NewMediaController),
	fx.Provide(controllers.NewStripeController))
