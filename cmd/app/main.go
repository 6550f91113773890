package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"formflow/cmd/fx/analyticsfx"
	"formflow/cmd/fx/cachefx"
	"formflow/cmd/fx/controllersfx"
	"formflow/cmd/fx/dbfx"
	"formflow/cmd/fx/flowfx"
	"formflow/cmd/fx/formsfx"
	"formflow/cmd/fx/renderfx"
	"formflow/cmd/fx/uploadsfx"
	"formflow/internal/api/controllers"
	"formflow/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		cachefx.Module,
		renderfx.Module,
		formsfx.Module,
		flowfx.Module,
		uploadsfx.Module,
		analyticsfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	formsController *controllers.FormsController,
	pagesController *controllers.PagesController,
	flowController *controllers.FlowController,
	uploadsController *controllers.UploadsController,
	analyticsController *controllers.AnalyticsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, formsController, pagesController, flowController, uploadsController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	formsController *controllers.FormsController,
	pagesController *controllers.PagesController,
	flowController *controllers.FlowController,
	uploadsController *controllers.UploadsController,
	analyticsController *controllers.AnalyticsController) {

	api := r.Group("/api")
	api.GET("/forms/:slug", formsController.GetForm)
	api.POST("/forms/:slug/submit", formsController.SubmitForm)
	api.POST("/forms/:slug/submissions", formsController.ListSubmissions)
	api.POST("/forms/:slug/upload", uploadsController.Upload)
	api.POST("/forms/:slug/analytics", analyticsController.Record)
	api.POST("/flow/:slug", flowController.HandleAction)

	r.GET("/f/:slug", pagesController.RenderBySlug)
	r.GET("/f/:slug/success", pagesController.RenderSuccess)
	r.GET("/embed/:formId", pagesController.RenderEmbed)
	r.GET("/vote/:slug", pagesController.RenderVote)
	r.GET("/:formId", pagesController.RenderByID)
}
