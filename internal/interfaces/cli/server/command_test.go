package server

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type fakeSessionRepository struct {
	deleteExpired chan struct{}
}

func (f *fakeSessionRepository) Create(ctx context.Context, session *user.Session) error { return nil }
func (f *fakeSessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepository) Update(ctx context.Context, session *user.Session) error { return nil }
func (f *fakeSessionRepository) Delete(ctx context.Context, sessionID string) error      { return nil }
func (f *fakeSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error   { return nil }

func (f *fakeSessionRepository) DeleteExpired(ctx context.Context) error {
	select {
	case f.deleteExpired <- struct{}{}:
	default:
	}
	return nil
}

func TestSweepExpiredSessions_RunsPeriodically(t *testing.T) {
	repo := &fakeSessionRepository{deleteExpired: make(chan struct{}, 1)}
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweepExpiredSessions(ctx, repo, 2*time.Millisecond, log)
		close(done)
	}()

	select {
	case <-repo.deleteExpired:
	case <-time.After(time.Second):
		t.Fatal("expired sessions were never swept")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on shutdown")
	}
}
