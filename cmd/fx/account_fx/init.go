package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripboard/internal/repositories"
	"tripboard/internal/services"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
