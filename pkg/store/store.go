// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"gitlab.com/tozd/go/errors"
)

const (
	tempSuffix   = ".patchrc.tmp"
	backupSuffix = ".bak"
)

// 💾 Store reads and overwrites whole documents
type Store interface {
	// Read returns the full content of the file at path
	Read(ctx context.Context, path string) ([]byte, error)

	// WriteAtomic replaces the file at path with data; readers never see a partial file
	WriteAtomic(ctx context.Context, path string, data []byte) error

	// Backup copies the file at path next to itself with a .bak suffix
	Backup(ctx context.Context, path string) error

	// Exists reports whether a file exists at path
	Exists(ctx context.Context, path string) (bool, error)
}

// IOError reports a failed storage operation on a single file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}

// 📁 Local is a Store for the local filesystem
type Local struct {
	fs afs.Service
}

var _ Store = (*Local)(nil)

// 🏭 NewLocal creates a Store for the local filesystem
func NewLocal() *Local {
	return &Local{fs: afs.New()}
}

// fileURL converts a filesystem path into an afs URL
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return toURL(abs), nil
}

func toURL(abs string) string {
	return "file://" + filepath.ToSlash(abs)
}

func (l *Local) Read(ctx context.Context, path string) ([]byte, error) {
	u, err := fileURL(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	obj, err := l.fs.Object(ctx, u)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	if obj.IsDir() {
		return nil, ioError("read", path, errors.Errorf("is a directory"))
	}
	data, err := l.fs.Download(ctx, obj)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("read document")
	return data, nil
}

func (l *Local) WriteAtomic(ctx context.Context, path string, data []byte) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ioError("write", path, err)
	}
	u := toURL(abs)

	mode := os.FileMode(0644)
	if obj, err := l.fs.Object(ctx, u); err == nil {
		mode = obj.Mode().Perm()
	}

	tmp := u + tempSuffix
	if err := l.fs.Upload(ctx, tmp, mode, bytes.NewReader(data)); err != nil {
		return ioError("write", path, errors.Errorf("writing temp file: %w", err))
	}

	if err := os.Chmod(abs+tempSuffix, mode); err != nil {
		_ = l.fs.Delete(ctx, tmp)
		return ioError("write", path, errors.Errorf("setting temp file mode: %w", err))
	}

	// afs Move treats an existing destination as a directory
	if err := os.Rename(abs+tempSuffix, abs); err != nil {
		_ = l.fs.Delete(ctx, tmp)
		return ioError("write", path, errors.Errorf("renaming temp file: %w", err))
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote document")
	return nil
}

func (l *Local) Backup(ctx context.Context, path string) error {
	u, err := fileURL(path)
	if err != nil {
		return ioError("backup", path, err)
	}

	// Only backup if file exists
	ok, err := l.fs.Exists(ctx, u)
	if err != nil {
		return ioError("backup", path, err)
	}
	if !ok {
		return nil
	}

	if err := l.fs.Copy(ctx, u, u+backupSuffix); err != nil {
		return ioError("backup", path, errors.Errorf("creating backup: %w", err))
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("backup", path+backupSuffix).Msg("created backup")
	return nil
}

func (l *Local) Exists(ctx context.Context, path string) (bool, error) {
	u, err := fileURL(path)
	if err != nil {
		return false, ioError("stat", path, err)
	}
	ok, err := l.fs.Exists(ctx, u)
	if err != nil {
		return false, ioError("stat", path, err)
	}
	return ok, nil
}
