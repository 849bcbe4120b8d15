package friend_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripboard/internal/repositories"
	"tripboard/internal/services"
	mem "tripboard/pkg/memcache"
)

var Module = fx.Provide(provideFriendRepo, provideFriendService)

func provideFriendRepo(db *gorm.DB) repositories.FriendRepository {
	return repositories.NewFriendRepository(db)
}

func provideFriendService(friendRepo repositories.FriendRepository, pools mem.FriendPoolStore) services.FriendServiceInterface {
	return services.NewFriendService(friendRepo, pools)
}
