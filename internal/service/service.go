package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sellora/sellerwallet/internal/config"
	"github.com/sellora/sellerwallet/internal/repo"
	accountservice "github.com/sellora/sellerwallet/internal/service/accountservice"
	statusservice "github.com/sellora/sellerwallet/internal/service/statusservice"
	"github.com/sellora/sellerwallet/internal/statussync"
	"github.com/sellora/sellerwallet/internal/tariff"
	"github.com/sellora/sellerwallet/pkg/cardgen"
)

type Services struct {
	Account    *accountservice.Service
	Status     *statusservice.Service
	Discounter *tariff.Discounter
}

func New(repos *repo.Repositories, channel statussync.Channel, cfg *config.Config) (*Services, error) {
	cards, err := cardgen.New(cfg.CardPrefix, cfg.CardMaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("can't build card generator: %w", err)
	}

	discountPercent, err := decimal.NewFromString(cfg.DiscountPercent)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet discount percent %q: %w", cfg.DiscountPercent, err)
	}

	classifier := tariff.NewClassifier(tariff.Thresholds{
		EliteTotal:     decimal.NewFromInt(cfg.EliteTotal),
		EliteMonthly:   decimal.NewFromInt(cfg.EliteMonthly),
		PremiumTotal:   decimal.NewFromInt(cfg.PremiumTotal),
		PremiumMonthly: decimal.NewFromInt(cfg.PremiumMonthly),
	})

	accountService := accountservice.New(repos.AccountRepo, repos.StatusRepo, repos.MethodRepo, cards, classifier, cfg.CASMaxRetries)
	statusService := statusservice.New(repos.StatusRepo, channel, cfg.CASMaxRetries)

	return &Services{
		Account:    accountService,
		Status:     statusService,
		Discounter: tariff.NewDiscounter(discountPercent),
	}, nil
}
