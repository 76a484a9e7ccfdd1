// backup.go implements the single-generation backup used to roll back a
// speculative edit.
//
// Separated from doc.go to isolate on-disk copy mechanics from the line
// store. The backup is a full byte copy taken before the document is
// overwritten, restored on rollback, and removed at the end of every edit
// regardless of outcome. Restores are verified with a content digest so a
// rollback is guaranteed byte-for-byte.
//
// Known constraint: the backup path is keyed by the target file's base
// name, so two concurrent edits on files sharing a base name would
// collide. The surrounding session is single-command-at-a-time, which
// keeps this safe here; a concurrent caller must serialise edits itself.

package doc

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// backupPrefix namespaces backup files in the temp directory.
const backupPrefix = "lnedit_backup_"

// Backup is a full copy of a file's pre-edit state, owned by one in-flight
// edit operation.
type Backup struct {
	target string
	path   string
	digest string
}

// BackupPath returns the fixed backup location for a target file.
func BackupPath(target string) string {
	return filepath.Join(os.TempDir(), backupPrefix+filepath.Base(target))
}

// NewBackup copies target to its backup location and records the content
// digest of the original bytes.
func NewBackup(target string) (*Backup, error) {
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("backup read %s: %w", target, err)
	}

	p := BackupPath(target)
	if err := os.WriteFile(p, data, 0644); err != nil {
		return nil, fmt.Errorf("backup write %s: %w", p, err)
	}

	return &Backup{target: target, path: p, digest: digest(data)}, nil
}

// Path returns the on-disk location of the backup copy.
func (b *Backup) Path() string { return b.path }

// Restore copies the backup over the target and verifies the restored
// bytes match the original digest.
func (b *Backup) Restore() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("restore read %s: %w", b.path, err)
	}
	if err := os.WriteFile(b.target, data, 0644); err != nil {
		return fmt.Errorf("restore write %s: %w", b.target, err)
	}
	if got := digest(data); got != b.digest {
		return fmt.Errorf("restore of %s is not byte-identical (digest %s, want %s)", b.target, got, b.digest)
	}
	return nil
}

// Remove deletes the backup copy. Safe to call after a failed restore;
// a missing backup is not an error.
func (b *Backup) Remove() error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// digest returns a short blake2b content hash used to verify restores.
func digest(data []byte) string {
	h := blake2b.Sum256(data)
	return hex.EncodeToString(h[:8])
}
