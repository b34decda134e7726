// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

// spyCredentials counts ClearSession calls and fails the first failUntil of them.
type spyCredentials struct {
	calls     atomic.Int64
	failUntil int64
	err       error
}

func (s *spyCredentials) LoadUsers(context.Context) ([]models.User, error) { return nil, nil }

func (s *spyCredentials) SaveUsers(context.Context, []models.User) error { return nil }

func (s *spyCredentials) LoadSession(context.Context) (*models.SessionUser, error) {
	return nil, nil
}

func (s *spyCredentials) SaveSession(context.Context, models.SessionUser) error { return nil }

func (s *spyCredentials) ClearSession(context.Context) error {
	n := s.calls.Add(1)
	if s.failUntil < 0 || n <= s.failUntil {
		return s.err
	}
	return nil
}

type alwaysRetryable struct{}

func (alwaysRetryable) Classify(error) store.ErrorClassification { return store.Retryable }

// ── NewSessionClearRetrier ───────────────────────────────────────────────────

func TestNewSessionClearRetrier_Defaults(t *testing.T) {
	r := NewSessionClearRetrier(&spyCredentials{}, nil, 0, logger.Nop()).(*sessionClearJob)

	assert.Equal(t, 30*time.Second, r.interval)
	assert.Equal(t, defaultMaxNonRetryableAttempts, r.maxAttempts)
	assert.NotNil(t, r.classifier)
	assert.False(t, r.Pending())
}

// ── Schedule ─────────────────────────────────────────────────────────────────

func TestSessionClearRetrier_SucceedsAfterFailures(t *testing.T) {
	spy := &spyCredentials{failUntil: 2, err: errors.New("locked")}
	r := NewSessionClearRetrier(spy, alwaysRetryable{}, 5*time.Millisecond, logger.Nop())
	defer r.Stop()

	r.Schedule(context.Background())
	assert.True(t, r.Pending())

	require.Eventually(t, func() bool { return !r.Pending() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(3), spy.calls.Load())
}

func TestSessionClearRetrier_GivesUpOnNonRetryable(t *testing.T) {
	spy := &spyCredentials{failUntil: -1, err: errors.New("read-only file system")}
	r := NewSessionClearRetrier(spy, store.NonRetryableClassifier{}, 2*time.Millisecond, logger.Nop())
	defer r.Stop()

	r.Schedule(context.Background())

	require.Eventually(t, func() bool { return !r.Pending() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(defaultMaxNonRetryableAttempts), spy.calls.Load())
}

func TestSessionClearRetrier_OutlivesCallerContext(t *testing.T) {
	spy := &spyCredentials{}
	r := NewSessionClearRetrier(spy, nil, 5*time.Millisecond, logger.Nop())
	defer r.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	r.Schedule(ctx)
	cancel()

	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

// ── Cancel / Stop ────────────────────────────────────────────────────────────

func TestSessionClearRetrier_Cancel(t *testing.T) {
	spy := &spyCredentials{}
	r := NewSessionClearRetrier(spy, nil, time.Hour, logger.Nop())

	r.Schedule(context.Background())
	require.True(t, r.Pending())

	r.Cancel()
	assert.False(t, r.Pending())
	assert.Zero(t, spy.calls.Load())

	// safe to repeat
	r.Cancel()
}

func TestSessionClearRetrier_StopDisablesSchedule(t *testing.T) {
	spy := &spyCredentials{}
	r := NewSessionClearRetrier(spy, nil, time.Millisecond, logger.Nop())

	r.Stop()
	r.Schedule(context.Background())

	assert.False(t, r.Pending())
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, spy.calls.Load())
}

func TestSessionClearRetrier_RescheduleReplacesPending(t *testing.T) {
	spy := &spyCredentials{}
	r := NewSessionClearRetrier(spy, nil, time.Hour, logger.Nop())
	defer r.Stop()

	r.Schedule(context.Background())
	r.Schedule(context.Background())

	assert.True(t, r.Pending())
	r.Cancel()
	assert.False(t, r.Pending())
}
