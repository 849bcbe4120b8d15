package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripboard/internal/repositories"
	"tripboard/internal/services"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	friendService services.FriendServiceInterface) services.ItineraryServiceInterface {

	return services.NewItineraryService(itineraryRepo, friendService)
}
