package fshost

import (
	"os"

	"github.com/woozymasta/urplit"
)

// BackupRecorder implements urplit.UndoRecorder by writing a one-time .bak
// copy of the material file before its first mutation. It is the filesystem
// analog of the editor's per-object undo snapshot.
type BackupRecorder struct {
	done map[string]bool
}

// NewBackupRecorder creates an empty recorder.
func NewBackupRecorder() *BackupRecorder {
	return &BackupRecorder{done: map[string]bool{}}
}

// Record copies the material file to <path>.bak unless a backup for that
// path was already taken during this run.
func (r *BackupRecorder) Record(m urplit.HostMaterial, _ string) error {
	path := m.Path()
	if r.done[path] {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+".bak", data, 0o600); err != nil {
		return err
	}

	r.done[path] = true
	return nil
}
