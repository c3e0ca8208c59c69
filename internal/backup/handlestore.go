package backup

import (
	"encoding/json"

	"gorm.io/gorm"

	"kharcha/internal/database"
)

// HandleKey is the fixed key the serialized handle is stored under in the
// secondary capability store.
const HandleKey = "backupHandleV1"

// HandleStore persists the backup handle independently of the document, so
// it survives reloads, imports, and resets on its own.
type HandleStore interface {
	// Load returns the persisted handle, or nil when none is set.
	Load() (Handle, error)
	Save(h Handle) error
	Clear() error
}

// DBHandleStore keeps the handle in the capability table of the local
// database.
type DBHandleStore struct {
	db *gorm.DB
}

// NewDBHandleStore creates a HandleStore over the given database.
func NewDBHandleStore(db *gorm.DB) *DBHandleStore {
	return &DBHandleStore{db: db}
}

// Load implements HandleStore. A stored handle that no longer parses is
// treated as unset rather than as an error.
func (s *DBHandleStore) Load() (Handle, error) {
	raw, ok, err := database.GetHandle(s.db, HandleKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var h FileHandle
	if err := json.Unmarshal(raw, &h); err != nil || h.Path == "" {
		return nil, nil
	}
	return &h, nil
}

// Save implements HandleStore. Only file handles have a persisted form;
// other handle implementations (test doubles) are session-local.
func (s *DBHandleStore) Save(h Handle) error {
	fh, ok := h.(*FileHandle)
	if !ok {
		return nil
	}
	raw, err := json.Marshal(fh)
	if err != nil {
		return err
	}
	return database.PutHandle(s.db, HandleKey, raw)
}

// Clear implements HandleStore.
func (s *DBHandleStore) Clear() error {
	return database.DeleteHandle(s.db, HandleKey)
}
