// Package backup keeps a user-chosen external file in sync with the
// document. The file is reached through an opaque capability handle that
// survives restarts; when write permission is lost the handle is demoted
// and the user is asked to reconnect.
package backup

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	apperrors "kharcha/internal/errors"
)

// ErrPermissionLost is reported by a handle whose write access was revoked.
var ErrPermissionLost = errors.New("backup: write permission lost")

// Handle is a capability reference to one external writable file. It allows
// repeated writes across sessions without re-prompting the user, until
// revoked.
type Handle interface {
	// Ref is a human-readable reference to the target, shown in settings.
	Ref() string

	// QueryPermission verifies write access is still granted.
	// Returns ErrPermissionLost when it is not.
	QueryPermission(ctx context.Context) error

	// CreateWritable opens the target for a full overwrite.
	CreateWritable(ctx context.Context) (io.WriteCloser, error)
}

// FileHandle is a Handle backed by a plain filesystem path.
type FileHandle struct {
	Path string `json:"path"`
}

// Ref implements Handle.
func (h *FileHandle) Ref() string { return h.Path }

// QueryPermission implements Handle. Access is probed by opening the file
// for writing without truncating it.
func (h *FileHandle) QueryPermission(_ context.Context) error {
	f, err := os.OpenFile(h.Path, os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		if os.IsPermission(err) || os.IsNotExist(err) {
			return ErrPermissionLost
		}
		return err
	}
	return f.Close()
}

// CreateWritable implements Handle.
func (h *FileHandle) CreateWritable(_ context.Context) (io.WriteCloser, error) {
	f, err := os.OpenFile(h.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		if os.IsPermission(err) || os.IsNotExist(err) {
			return nil, ErrPermissionLost
		}
		return nil, err
	}
	return f, nil
}

// Picker is the external file-selection prompt. Implementations return
// apperrors.ErrCancelled when the user dismissed the prompt and
// apperrors.ErrUnsupported when the host has no file capability.
type Picker interface {
	ChooseFile(ctx context.Context, requested string) (Handle, error)
}

// OSPicker selects backup targets on the local filesystem.
type OSPicker struct{}

// ChooseFile validates the requested path and returns a file handle for it.
// An empty path means the user dismissed the prompt.
func (OSPicker) ChooseFile(_ context.Context, requested string) (Handle, error) {
	if requested == "" {
		return nil, apperrors.ErrCancelled
	}
	abs, err := filepath.Abs(requested)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	if info, err := os.Stat(filepath.Dir(abs)); err != nil || !info.IsDir() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "backup directory does not exist")
	}
	return &FileHandle{Path: abs}, nil
}
