package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/errs"
)

// LocalStore writes uploads into a directory served under URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
	now       func() time.Time
}

func NewLocalStore(dir, urlPrefix string) *LocalStore {
	return &LocalStore{
		Dir:       dir,
		URLPrefix: "/" + strings.Trim(urlPrefix, "/"),
		now:       time.Now,
	}
}

func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalName, contentType string) (Upload, error) {
	if err := ctx.Err(); err != nil {
		return Upload{}, err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return Upload{}, errs.NewStorageError("create upload directory", err)
	}

	mimeType, r, err := DetectContentType(r, contentType)
	if err != nil {
		return Upload{}, errs.NewStorageError("read upload", err)
	}

	filename := Filename(originalName, mimeType, s.now())
	target := filepath.Join(s.Dir, filename)

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Upload{}, errs.NewStorageError("create upload file", err)
	}
	size, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(target)
		return Upload{}, errs.NewStorageError("write upload file", errors.Join(copyErr, closeErr))
	}

	log.Debug().Str("file", target).Int64("size", size).Msg("stored upload")
	return Upload{
		URL:      s.URLPrefix + "/" + filename,
		Filename: filename,
		Size:     size,
		MimeType: mimeType,
	}, nil
}

// Owns reports whether url names a file this store wrote. Uploads sit directly under
// URLPrefix, so nested paths such as /uploads/a/b.png are not ours.
func (s *LocalStore) Owns(url string) bool {
	_, ok := s.fileName(url)
	return ok
}

func (s *LocalStore) fileName(url string) (string, bool) {
	name, found := strings.CutPrefix(url, s.URLPrefix+"/")
	if !found || name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return "", false
	}
	return name, true
}

// Delete removes the file behind url. URLs outside the store and files that are already
// gone are ignored.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	name, ok := s.fileName(url)
	if !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.NewStorageError("delete upload file", err)
	}
	return nil
}
