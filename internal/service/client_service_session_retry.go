package service

import (
	"context"
	"sync"
	"time"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/internal/utils"
)

// defaultMaxNonRetryableAttempts bounds retries of failures the classifier
// does not consider transient.
const defaultMaxNonRetryableAttempts = 5

type sessionClearJob struct {
	credentials store.CredentialStore
	classifier  store.ErrorClassificator
	interval    time.Duration
	maxAttempts int
	logger      *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	gen     uint64
	pending bool
	stopped bool
}

// NewSessionClearRetrier creates a [SessionClearRetrier] that calls
// credentials.ClearSession on a ticker. Transient failures are retried until
// they succeed; other failures give up after a bounded number of attempts.
// If interval is zero or negative it defaults to 30 seconds.
func NewSessionClearRetrier(credentials store.CredentialStore, classifier store.ErrorClassificator, interval time.Duration, logger *logger.Logger) SessionClearRetrier {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if classifier == nil {
		classifier = store.NonRetryableClassifier{}
	}

	return &sessionClearJob{
		credentials: credentials,
		classifier:  classifier,
		interval:    interval,
		maxAttempts: defaultMaxNonRetryableAttempts,
		logger:      logger,
	}
}

// Schedule implements SessionClearRetrier. The retry outlives the caller's
// context; only Cancel and Stop end it.
func (j *sessionClearJob) Schedule(ctx context.Context) {
	j.Cancel()

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.stopped {
		return
	}

	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	j.cancel = cancel
	j.gen++
	gen := j.gen
	j.pending = true
	j.wg.Add(1)

	scheduledBy, _ := utils.GetOperationIDFromContext(ctx)
	go j.run(jobCtx, gen, scheduledBy)
}

func (j *sessionClearJob) run(ctx context.Context, gen uint64, scheduledBy string) {
	defer j.wg.Done()
	defer j.finish(gen)

	log := j.logger.With().
		Str("job", "session_clear_retry").
		Str("scheduled_by", scheduledBy).
		Logger()

	t := time.NewTicker(j.interval)
	defer t.Stop()

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			err := j.credentials.ClearSession(ctx)
			if err == nil {
				log.Info().Int("attempts", attempts+1).Msg("stale session removed")
				return
			}

			attempts++
			class := j.classifier.Classify(err)
			if class == store.NonRetryable && attempts >= j.maxAttempts {
				log.Error().Err(err).Int("attempts", attempts).Msg("giving up removing stale session")
				return
			}
			log.Warn().Err(err).Int("attempts", attempts).Stringer("classification", class).Msg("session removal failed, will retry")
		}
	}
}

func (j *sessionClearJob) finish(gen uint64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.gen == gen {
		j.pending = false
	}
}

// Cancel implements SessionClearRetrier. Safe to call when nothing is
// scheduled.
func (j *sessionClearJob) Cancel() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.pending = false
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *sessionClearJob) Pending() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.pending
}

func (j *sessionClearJob) Stop() {
	j.mu.Lock()
	j.stopped = true
	j.mu.Unlock()

	j.Cancel()
}
