package models

import "time"

// Settings holds the app-lock and backup state persisted with the document.
type Settings struct {
	// PINHash is the stored form of the 4-digit PIN, or "" when no PIN is set.
	PINHash string `json:"pinHash,omitempty"`

	// Biometric indicates whether the platform credential unlock is enabled.
	Biometric bool `json:"bio"`

	// LastBackup is the instant of the last successful backup write,
	// or nil if no backup has ever completed.
	LastBackup *time.Time `json:"lastBackup,omitempty"`
}
