package app

import (
	"log/slog"

	"github.com/fordrm/the-a-team-sub000/internal/adapter/postgres"
	agreementrepo "github.com/fordrm/the-a-team-sub000/internal/adapter/postgres/agreement"
	alertrepo "github.com/fordrm/the-a-team-sub000/internal/adapter/postgres/alert"
	contradictionrepo "github.com/fordrm/the-a-team-sub000/internal/adapter/postgres/contradiction"
	"github.com/fordrm/the-a-team-sub000/internal/config"
	"github.com/fordrm/the-a-team-sub000/internal/service/agreement"
	"github.com/fordrm/the-a-team-sub000/internal/service/alert"
	"github.com/fordrm/the-a-team-sub000/internal/service/contradiction"
	"github.com/fordrm/the-a-team-sub000/internal/service/sweep"
)

type services struct {
	alert         *alert.Service
	agreement     *agreement.Service
	contradiction *contradiction.Service
	sweep         *sweep.Service
}

func newServices(db postgres.DB, cfg *config.Config, logger *slog.Logger) *services {
	txm := postgres.NewTxManager(db)

	alerts := alertrepo.New(db)
	contradictions := contradictionrepo.New(db)
	agreements := agreementrepo.New(db)

	alertSvc := alert.NewService(logger, alerts, contradictions, cfg.Alert)

	return &services{
		alert:         alertSvc,
		agreement:     agreement.NewService(logger, agreements, alertSvc, txm),
		contradiction: contradiction.NewService(logger, contradictions, alertSvc),
		sweep:         sweep.NewService(logger, contradictions, alertSvc, cfg.Alert, cfg.Sweep),
	}
}
