package scheduler

import (
	"context"
	"sync"
	"time"

	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/feedygotech/laundry-backend/internal/application/pricing"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/config"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// digestJobTimeout caps one digest run, including catalog reads
const digestJobTimeout = 5 * time.Minute

// DigestScheduler runs the daily pending-changes digest: every service
// whose published price list has drifted from the live catalog is
// collected and mailed to the configured operator address.
type DigestScheduler struct {
	cfg       config.SchedulerConfig
	digestTo  string
	publisher *pricing.Publisher
	mailer    applaundry.Mailer
	logger    *zap.Logger
	cron      *cron.Cron

	mu        sync.Mutex
	lastRunAt *time.Time
}

// NewDigestScheduler creates a new DigestScheduler
func NewDigestScheduler(
	cfg config.SchedulerConfig,
	digestTo string,
	publisher *pricing.Publisher,
	mailer applaundry.Mailer,
	logger *zap.Logger,
) *DigestScheduler {
	return &DigestScheduler{
		cfg:       cfg,
		digestTo:  digestTo,
		publisher: publisher,
		mailer:    mailer,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start registers the digest job and starts the cron loop
func (s *DigestScheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("digest scheduler disabled")
		return nil
	}
	if s.digestTo == "" {
		s.logger.Warn("digest scheduler enabled but mail.digest_to is empty, skipping")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.DigestSchedule, s.runDigest); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("digest scheduler started",
		zap.String("schedule", s.cfg.DigestSchedule),
		zap.String("digest_to", s.digestTo),
	)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish
func (s *DigestScheduler) Stop(ctx context.Context) error {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.logger.Info("digest scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("digest scheduler stop timed out")
		return ctx.Err()
	}
}

// TriggerNow runs the digest outside its schedule
func (s *DigestScheduler) TriggerNow() {
	go s.runDigest()
}

// LastRunAt returns when the digest last ran
func (s *DigestScheduler) LastRunAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRunAt
}

func (s *DigestScheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), digestJobTimeout)
	defer cancel()

	now := time.Now()
	s.mu.Lock()
	s.lastRunAt = &now
	s.mu.Unlock()

	pending, err := s.publisher.ListPendingServices(ctx)
	if err != nil {
		s.logger.Error("failed to collect pending services for digest", zap.Error(err))
		return
	}
	if len(pending) == 0 {
		s.logger.Debug("no pending price changes, skipping digest")
		return
	}

	entries := make([]applaundry.PendingDigestEntry, 0, len(pending))
	for _, p := range pending {
		entries = append(entries, applaundry.PendingDigestEntry{
			ServiceName: p.Name,
			Published:   p.Published,
		})
	}

	if err := s.mailer.SendPendingChangesDigest(s.digestTo, entries); err != nil {
		s.logger.Error("failed to send pending-changes digest", zap.Error(err))
		return
	}
	s.logger.Info("pending-changes digest sent",
		zap.Int("services", len(entries)),
		zap.String("to", s.digestTo),
	)
}
