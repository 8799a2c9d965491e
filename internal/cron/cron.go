package cron

import (
	"context"

	cronv3 "github.com/robfig/cron/v3"

	"github.com/devfolio/folio-api/config"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/tracing"
	"github.com/devfolio/folio-api/services"
)

// CronManager runs the periodic housekeeping jobs: a daily contact stats
// digest and pruning of idle rate-limit windows.
type CronManager struct {
	cfg      *config.Config
	log      logger.Logger
	cron     *cronv3.Cron
	services *services.Services
	jobIDs   map[string]cronv3.EntryID
}

func NewCronManager(cfg *config.Config, log logger.Logger, svcs *services.Services) *CronManager {
	return &CronManager{
		cfg:      cfg,
		log:      log,
		services: svcs,
		jobIDs:   make(map[string]cronv3.EntryID),
	}
}

func (cm *CronManager) Start() error {
	cm.cron = cronv3.New()

	id, err := cm.cron.AddFunc(cm.cfg.CronConfig.DigestSchedule, cm.runContactDigest)
	if err != nil {
		return err
	}
	cm.jobIDs["contactDigest"] = id

	cm.cron.Start()
	cm.log.Infof("Cron manager started: contact digest scheduled at %q", cm.cfg.CronConfig.DigestSchedule)
	return nil
}

func (cm *CronManager) Stop() {
	if cm.cron != nil {
		ctx := cm.cron.Stop()
		<-ctx.Done()
	}
	cm.log.Info("Cron manager stopped")
}

func (cm *CronManager) runContactDigest() {
	span, ctx := tracing.StartTracerSpan(context.Background(), "CronManager.runContactDigest")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	cm.services.SubmitLimiter.Prune()

	stats, err := cm.services.ContactService.Stats(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Contact digest failed: %v", err)
		return
	}

	cm.log.Infof("Contact digest: total=%d unread=%d read=%d replied=%d spam=%d today=%d",
		stats.Total, stats.Unread, stats.Read, stats.Replied, stats.Spam, stats.Today)
}
