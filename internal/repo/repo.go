package repo

import (
	accountrepo "github.com/sellora/sellerwallet/internal/repo/account-repo"
	methodrepo "github.com/sellora/sellerwallet/internal/repo/method-repo"
	statusrepo "github.com/sellora/sellerwallet/internal/repo/status-repo"
	"github.com/sellora/sellerwallet/internal/service/accountservice"
	"github.com/sellora/sellerwallet/internal/service/statusservice"
	"github.com/sellora/sellerwallet/internal/storage"
)

type Repositories struct {
	AccountRepo accountservice.AccountRepo
	StatusRepo  statusservice.Repo
	// MethodRepo stays concrete so the app can seed the reference data.
	MethodRepo *methodrepo.Repository
}

func New(store storage.Store) *Repositories {
	return &Repositories{
		AccountRepo: accountrepo.New(store),
		StatusRepo:  statusrepo.New(store),
		MethodRepo:  methodrepo.New(store),
	}
}
