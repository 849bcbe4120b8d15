package memcache_fx

import (
	"go.uber.org/fx"
	mem "tripboard/pkg/memcache"
)

var Module = fx.Provide(providePools)

func providePools() mem.FriendPoolStore {
	return mem.NewFriendPools()
}
