package service

import (
	"time"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/internal/utils"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	Session SessionController
	Retrier SessionClearRetrier
}

// NewClientServices wires the session controller and its retry job on top
// of the client storages.
func NewClientServices(storages *store.ClientStorages, retryInterval time.Duration, logger *logger.Logger) *ClientServices {
	retrier := NewSessionClearRetrier(storages.Credentials, storages.Classifier, retryInterval, logger)

	return &ClientServices{
		Session: NewSessionController(storages.Credentials, retrier, utils.NewUUIDGenerator(), logger),
		Retrier: retrier,
	}
}

// Close stops background jobs.
func (s *ClientServices) Close() {
	s.Retrier.Stop()
}
