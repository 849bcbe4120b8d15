package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripboard/cmd/fx/account_fx"
	"tripboard/cmd/fx/controllers_fx"
	"tripboard/cmd/fx/db_fx"
	"tripboard/cmd/fx/friend_fx"
	"tripboard/cmd/fx/itinerary_fx"
	"tripboard/cmd/fx/memcache_fx"
	"tripboard/internal/api/controllers"
	"tripboard/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		friend_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	friendController *controllers.FriendController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, accountController, friendController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	friendController *controllers.FriendController) {

	accounts := r.Group("/accounts")
	accounts.POST("/signup", accountController.SignUp)
	accounts.POST("/login", accountController.Login)

	friends := r.Group("/friends")
	friends.Use(middleware.JWTAuthMiddleware())
	friends.GET("", friendController.GetFriends)

	// Reads resolve the tier per request; a public itinerary is viewable by
	// anonymous visitors, so GET by id only optionally authenticates.
	read := r.Group("/itineraries")
	read.Use(middleware.OptionalJWTAuthMiddleware())
	read.GET("/:itineraryId", itineraryController.GetItinerary)

	write := r.Group("/itineraries")
	write.Use(middleware.JWTAuthMiddleware())
	write.POST("", itineraryController.Submit)
	write.GET("", itineraryController.ListItineraries)
	write.PUT("/:itineraryId", itineraryController.UpdateDetails)
	write.DELETE("/:itineraryId", itineraryController.DeleteItinerary)
	write.PUT("/:itineraryId/reschedule", itineraryController.Reschedule)

	write.POST("/:itineraryId/boards", itineraryController.AddDay)
	write.DELETE("/:itineraryId/boards/:day", itineraryController.RemoveDay)
	write.POST("/:itineraryId/boards/:day/items", itineraryController.AssignItem)
	write.DELETE("/:itineraryId/boards/:day/items/:item", itineraryController.RemoveItem)

	write.POST("/:itineraryId/travelers", itineraryController.AddTraveler)
	write.PUT("/:itineraryId/travelers/:userId", itineraryController.SetTravelerRole)
	write.DELETE("/:itineraryId/travelers/:userId", itineraryController.RemoveTraveler)

	write.POST("/:itineraryId/notes", itineraryController.AddNote)
	write.PUT("/:itineraryId/notes/:noteId", itineraryController.ToggleNote)
	write.DELETE("/:itineraryId/notes/:noteId", itineraryController.RemoveNote)
}
