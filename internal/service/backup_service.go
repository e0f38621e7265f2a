package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mbeekman/wealthtrack/internal/config"
)

const backupPrefix = "wealthtrack-"

// BackupService writes point-in-time copies of the SQLite database.
// Backups use VACUUM INTO, which produces a consistent snapshot without
// blocking readers. Restore is an operational task (stop the server, swap
// the file), not an API operation.
type BackupService struct {
	db   *sql.DB
	dir  string
	keep int
}

// NewBackupService creates a new BackupService with the provided configuration.
func NewBackupService(db *sql.DB, cfg config.BackupConfig) *BackupService {
	return &BackupService{
		db:   db,
		dir:  cfg.Dir,
		keep: cfg.Keep,
	}
}

// Backup writes a timestamped database copy into the backup directory and
// prunes old copies beyond the retention count. Returns the written path.
func (s *BackupService) Backup(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := backupPrefix + time.Now().UTC().Format("20060102-150405") + ".db"
	path := filepath.Join(s.dir, name)

	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := s.prune(); err != nil {
		return "", fmt.Errorf("failed to prune old backups: %w", err)
	}

	return path, nil
}

// ListBackups returns the backup filenames currently retained, newest first.
func (s *BackupService) ListBackups() ([]string, error) {
	names, err := s.backupNames()
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// prune removes the oldest backups beyond the retention count.
// Backup filenames embed a sortable UTC timestamp, so a string sort orders
// them chronologically.
func (s *BackupService) prune() error {
	if s.keep <= 0 {
		return nil
	}

	names, err := s.backupNames()
	if err != nil {
		return err
	}
	if len(names) <= s.keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-s.keep] {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", name, err)
		}
	}
	return nil
}

func (s *BackupService) backupNames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), backupPrefix) && strings.HasSuffix(entry.Name(), ".db") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
