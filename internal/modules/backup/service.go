package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	appcfg "github.com/copperstate/realty-core/internal/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tableNames lists the tables dumped into every archive.
var tableNames = []string{"settings", "neighborhoods", "blog_posts", "resources"}

// Archive describes a backup file on disk.
type Archive struct {
	Filename string    `json:"filename"`
	Size     string    `json:"size"`
	Created  time.Time `json:"created"`
}

// Service creates and lists backup archives: a ZIP of per-table JSON dumps
// written under the configured directory, optionally mirrored to S3.
type Service struct {
	db     *gorm.DB
	cfg    appcfg.BackupConfig
	logger *zap.Logger
}

func NewService(db *gorm.DB, cfg appcfg.BackupConfig, logger *zap.Logger) *Service {
	return &Service{db: db, cfg: cfg, logger: logger}
}

// Run dumps every table to JSON, zips the dumps, writes the archive to the
// backup dir and, when configured, uploads it to S3.
func (s *Service) Run(ctx context.Context) (*Archive, error) {
	buf, err := s.buildZip()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	now := time.Now()
	filename := fmt.Sprintf("backup-%s.zip", now.Format("2006-01-02T15-04-05"))
	path := filepath.Join(s.cfg.Dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}
	s.logger.Info("backup archive written", zap.String("path", path), zap.Int("bytes", buf.Len()))

	if s.cfg.S3.Enable {
		up, err := newUploader(s.cfg.S3)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprintf("backups/%s/%s/%s", now.Format("2006"), now.Format("01"), filename)
		if err := up.Upload(ctx, key, buf.Bytes()); err != nil {
			return nil, err
		}
		s.logger.Info("backup uploaded", zap.String("key", key))
	}

	return &Archive{
		Filename: filename,
		Size:     formatSize(int64(buf.Len())),
		Created:  now,
	}, nil
}

// List returns the archives present in the backup dir, newest first.
func (s *Service) List() ([]Archive, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Archive{}, nil
		}
		return nil, err
	}

	archives := []Archive{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		archives = append(archives, Archive{
			Filename: e.Name(),
			Size:     formatSize(info.Size()),
			Created:  info.ModTime(),
		})
	}
	for i, j := 0, len(archives)-1; i < j; i, j = i+1, j-1 {
		archives[i], archives[j] = archives[j], archives[i]
	}
	return archives, nil
}

func (s *Service) buildZip() (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)

	for _, table := range tableNames {
		var rows []map[string]interface{}
		if err := s.db.Table(table).Find(&rows).Error; err != nil {
			s.logger.Warn("table skipped in backup", zap.String("table", table), zap.Error(err))
			continue
		}
		data, err := json.Marshal(rows)
		if err != nil {
			return nil, err
		}
		f, err := w.Create(table + ".json")
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(data); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
