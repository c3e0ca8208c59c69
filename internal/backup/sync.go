package backup

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/logger"
	"kharcha/internal/models"
	"kharcha/internal/store"
)

// ReasonAutomatic labels syncs triggered by the daily focus/open check.
const ReasonAutomatic = "automatic"

// Synchronizer decides when a backup write is due, performs it, and demotes
// the handle on permission loss. It never blocks or rolls back the primary
// store: every backup failure is non-fatal to the host application.
type Synchronizer struct {
	store    *store.Store
	handles  HandleStore
	picker   Picker
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	handle Handle

	// busy is the single-flight guard: a sync requested while one is
	// in flight is dropped, not queued.
	busy atomic.Bool
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithInterval overrides the default 24h backup interval.
func WithInterval(d time.Duration) Option {
	return func(s *Synchronizer) { s.interval = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Synchronizer) { s.now = now }
}

// New creates a Synchronizer and loads the persisted handle once. A handle
// that fails to load leaves the synchronizer in the unset state.
func New(st *store.Store, handles HandleStore, picker Picker, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		store:    st,
		handles:  handles,
		picker:   picker,
		interval: 24 * time.Hour,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	h, err := handles.Load()
	if err != nil {
		logger.Get().Warnw("failed to load backup handle", "error", err)
	}
	s.handle = h
	return s
}

// Handle returns the active handle, or nil when no backup file is connected.
func (s *Synchronizer) Handle() Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

// ChooseFile runs the external file prompt and promotes the chosen handle to
// active. A cancelled prompt is not an error: the synchronizer silently
// keeps its current state. An unsupported host is surfaced to the caller.
func (s *Synchronizer) ChooseFile(ctx context.Context, requested string) (Handle, error) {
	h, err := s.picker.ChooseFile(ctx, requested)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrCancelled.Code {
			return nil, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.handle = h
	s.mu.Unlock()

	if err := s.handles.Save(h); err != nil {
		logger.Get().Warnw("failed to persist backup handle", "ref", h.Ref(), "error", err)
	}
	logger.Get().Infow("backup file connected", "ref", h.Ref())
	return h, nil
}

// Disconnect clears the active and persisted handle.
func (s *Synchronizer) Disconnect() {
	s.demote()
	logger.Get().Info("backup file disconnected")
}

// IsDue reports whether an automatic backup should run: false without a
// handle, true when no backup ever completed, true when the last one is
// older than the backup interval.
func (s *Synchronizer) IsDue(settings models.Settings) bool {
	if s.Handle() == nil {
		return false
	}
	if settings.LastBackup == nil {
		return true
	}
	return s.now().Sub(*settings.LastBackup) > s.interval
}

// Sync writes the full serialized document to the backup file and records
// the completion instant in settings. Guarded by a single-flight lock: a
// call arriving while another sync is in flight no-ops and returns the zero
// time. On permission loss the handle is cleared everywhere and
// ErrPermissionRevoked returned so the caller can prompt the user to
// reselect a file; any other failure leaves all state unchanged.
func (s *Synchronizer) Sync(ctx context.Context, reason string) (time.Time, error) {
	if !s.busy.CompareAndSwap(false, true) {
		logger.Get().Debugw("backup already in flight, dropping request", "reason", reason)
		return time.Time{}, nil
	}
	defer s.busy.Store(false)

	handle := s.Handle()
	if handle == nil {
		return time.Time{}, apperrors.ErrBackupNotSet
	}

	if err := handle.QueryPermission(ctx); err != nil {
		if errors.Is(err, ErrPermissionLost) {
			s.demote()
			return time.Time{}, apperrors.Wrap(apperrors.ErrPermissionRevoked, err)
		}
		logger.Get().Errorw("backup permission check failed", "ref", handle.Ref(), "error", err)
		return time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	data, err := s.store.Export()
	if err != nil {
		return time.Time{}, err
	}

	w, err := handle.CreateWritable(ctx)
	if err != nil {
		if errors.Is(err, ErrPermissionLost) {
			s.demote()
			return time.Time{}, apperrors.Wrap(apperrors.ErrPermissionRevoked, err)
		}
		logger.Get().Errorw("backup open failed", "ref", handle.Ref(), "error", err)
		return time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		logger.Get().Errorw("backup write failed", "ref", handle.Ref(), "error", err)
		return time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := w.Close(); err != nil {
		logger.Get().Errorw("backup close failed", "ref", handle.Ref(), "error", err)
		return time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	completed := s.now()
	s.store.MutateSettings(func(set *models.Settings) {
		t := completed
		set.LastBackup = &t
	})

	logger.Get().Infow("backup completed",
		"ref", handle.Ref(),
		"reason", reason,
		"bytes", len(data),
	)
	return completed, nil
}

// CheckDailyBackup runs an automatic sync when one is due. It is invoked on
// app focus/open events only; the synchronizer runs no timer of its own.
// Failures are logged and swallowed: the next trigger retries naturally.
func (s *Synchronizer) CheckDailyBackup(ctx context.Context) {
	if !s.IsDue(s.store.Settings()) {
		return
	}
	if _, err := s.Sync(ctx, ReasonAutomatic); err != nil {
		logger.Get().Warnw("automatic backup failed", "error", err)
	}
}

// demote clears the in-memory and persisted handle.
func (s *Synchronizer) demote() {
	s.mu.Lock()
	s.handle = nil
	s.mu.Unlock()
	if err := s.handles.Clear(); err != nil {
		logger.Get().Warnw("failed to clear persisted backup handle", "error", err)
	}
}
