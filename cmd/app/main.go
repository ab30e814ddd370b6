package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"inzider/cmd/fx/access_fx"
	"inzider/cmd/fx/account_fx"
	"inzider/cmd/fx/content_fx"
	"inzider/cmd/fx/controllers_fx"
	"inzider/cmd/fx/db_fx"
	"inzider/cmd/fx/mail_fx"
	"inzider/cmd/fx/purchase_fx"
	"inzider/cmd/fx/storage_fx"
	"inzider/cmd/fx/stripe_fx"
	"inzider/internal/api/controllers"
	"inzider/pkg/authz"
	"inzider/pkg/logger"
	"inzider/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		fx.Provide(logger.New),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),

		db_fx.Module,
		storage_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		content_fx.Module,
		purchase_fx.Module,
		access_fx.Module,
		stripe_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, l *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				l.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					l.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			l.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	creatorController *controllers.CreatorController,
	userController *controllers.UserController,
	tripController *controllers.TripController,
	goToController *controllers.GoToController,
	purchaseController *controllers.PurchaseController,
	discountController *controllers.DiscountController,
	refundController *controllers.RefundController,
	accessController *controllers.AccessController,
	mediaController *controllers.MediaController,
	stripeController *controllers.StripeController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController, creatorController, userController,
		tripController, goToController, purchaseController,
		discountController, refundController, accessController,
		mediaController, stripeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	creatorController *controllers.CreatorController,
	userController *controllers.UserController,
	tripController *controllers.TripController,
	goToController *controllers.GoToController,
	purchaseController *controllers.PurchaseController,
	discountController *controllers.DiscountController,
	refundController *controllers.RefundController,
	accessController *controllers.AccessController,
	mediaController *controllers.MediaController,
	stripeController *controllers.StripeController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/signin", authController.SignIn)

	creatorsGroup := r.Group("/creators")
	creatorsGroup.GET("", creatorController.List)
	creatorsGroup.GET("/:id", creatorController.GetByID)
	creatorsWrite := creatorsGroup.Group("")
	creatorsWrite.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(authz.KindCreator))
	creatorsWrite.PUT("/:id", creatorController.Update)
	creatorsWrite.DELETE("/:id", creatorController.Delete)

	usersGroup := r.Group("/users")
	usersGroup.Use(middleware.JWTAuthMiddleware())
	usersGroup.GET("", userController.List)
	usersGroup.GET("/:id", userController.GetByID)
	usersGroup.PUT("/:id", userController.Update)
	usersGroup.DELETE("/:id", userController.Delete)

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", tripController.List)
	tripsGroup.GET("/:id", tripController.GetByID)
	tripsWrite := tripsGroup.Group("")
	tripsWrite.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(authz.KindCreator))
	tripsWrite.POST("", tripController.Create)
	tripsWrite.PUT("/:id", tripController.Update)
	tripsWrite.DELETE("/:id", tripController.Delete)

	goTosGroup := r.Group("/gotos")
	goTosGroup.GET("", goToController.List)
	goTosGroup.GET("/:id", goToController.GetByID)
	goTosWrite := goTosGroup.Group("")
	goTosWrite.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(authz.KindCreator))
	goTosWrite.POST("", goToController.Create)
	goTosWrite.PUT("/:id", goToController.Update)
	goTosWrite.DELETE("/:id", goToController.Delete)

	purchasesGroup := r.Group("/purchases")
	purchasesGroup.Use(middleware.JWTAuthMiddleware())
	purchasesGroup.POST("", purchaseController.Create)
	purchasesGroup.GET("", purchaseController.ListByUser)
	purchasesGroup.GET("/:id", purchaseController.GetByID)
	purchasesGroup.DELETE("/:id", purchaseController.Delete)
	// Status transitions belong to the content's creator; the controller
	// additionally checks ownership of the specific purchase.
	purchasesStatus := purchasesGroup.Group("")
	purchasesStatus.Use(middleware.RequireKind(authz.KindCreator))
	purchasesStatus.PUT("/:id/status", purchaseController.UpdateStatus)

	discountsGroup := r.Group("/discounts")
	discountsGroup.GET("", discountController.List)
	discountsGroup.GET("/:id", discountController.GetByID)
	discountsWrite := discountsGroup.Group("")
	discountsWrite.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(authz.KindCreator))
	discountsWrite.POST("", discountController.Create)
	discountsWrite.PUT("/:id", discountController.Update)
	discountsWrite.DELETE("/:id", discountController.Delete)

	refundsGroup := r.Group("/refunds")
	refundsGroup.Use(middleware.JWTAuthMiddleware())
	refundsGroup.POST("", refundController.Create)
	refundsGroup.GET("", refundController.ListByPurchase)
	refundsGroup.GET("/:id", refundController.GetByID)
	refundsGroup.PUT("/:id/status", refundController.UpdateStatus)
	refundsGroup.DELETE("/:id", refundController.Delete)

	accessGroup := r.Group("/access")
	accessGroup.POST("/verify", accessController.Verify)
	accessSession := accessGroup.Group("")
	accessSession.Use(middleware.JWTAuthMiddleware())
	accessSession.POST("/check", accessController.Check)
	accessIssue := accessGroup.Group("")
	accessIssue.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(authz.KindCreator))
	accessIssue.POST("/issue-test", accessController.IssueTest)

	mediaGroup := r.Group("/media")
	mediaGroup.GET("/:key", mediaController.Proxy)
	mediaWrite := mediaGroup.Group("")
	mediaWrite.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(authz.KindCreator))
	mediaWrite.POST("/upload", mediaController.Upload)
	mediaWrite.DELETE("/:key", mediaController.Delete)

	stripeGroup := r.Group("/stripe")
	stripeGroup.GET("/callback", stripeController.Callback)
	stripeConnect := stripeGroup.Group("")
	stripeConnect.Use(middleware.JWTAuthMiddleware(), middleware.RequireKind(authz.KindCreator))
	stripeConnect.GET("/connect", stripeController.Connect)
	stripeConnect.POST("/disconnect", stripeController.Disconnect)
}
