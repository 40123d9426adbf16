// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/models"
)

const (
	// shardDepth is the number of leading key characters used as nested
	// directory levels in front of the record directory.
	shardDepth = 4

	versionFileName = "version"
	contentFileName = "content"

	dirPerm  = 0o755
	filePerm = 0o644
)

// fileStore persists every record in its own directory under basePath:
//
//	basePath/k/e/y/s/keys.../version
//	basePath/k/e/y/s/keys.../content
//
// The layout is an on-disk format shared with backup tooling and must not
// change. Distinct keys never touch the same files, so there is no lock
// here; same-key writers are serialised by the caller.
type fileStore struct {
	basePath string
	logger   *logger.Logger
}

// NewFileStore returns a [KeyedStore] rooted at basePath. The directory is
// created if it does not exist.
func NewFileStore(basePath string, log *logger.Logger) (KeyedStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty base path", ErrWritingRecord)
	}

	if err := os.MkdirAll(basePath, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingRecord, err)
	}

	return &fileStore{
		basePath: basePath,
		logger:   log,
	}, nil
}

// ShardPath returns the record directory of key relative to the store root:
// the first four characters of key as four nested directories, followed by
// the key itself. "abcdefg" maps to "a/b/c/d/abcdefg".
func ShardPath(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	elems := make([]string, 0, shardDepth+1)
	for i := 0; i < shardDepth; i++ {
		elems = append(elems, key[i:i+1])
	}
	elems = append(elems, key)

	return filepath.Join(elems...), nil
}

func validateKey(key string) error {
	if len(key) < shardDepth {
		return ErrInvalidKey
	}

	if strings.ContainsAny(key, `/\`+"\x00") || strings.Contains(key[:shardDepth], ".") {
		return ErrInvalidKey
	}

	return nil
}

// Put writes content first and version last. Each file is replaced through a
// rename, so a reader never observes a half-written file and a crash between
// the two renames leaves the previous version number in place.
func (f *fileStore) Put(ctx context.Context, key string, data models.SyncData) error {
	log := logger.FromContext(ctx)

	dir, err := f.recordDir(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(dir, dirPerm); err != nil {
		log.Err(err).Str("func", "fileStore.Put").Msg("failed to create record directory")
		return fmt.Errorf("%w: %w", ErrWritingRecord, err)
	}

	if err = writeFileAtomic(dir, contentFileName, []byte(data.Content)); err != nil {
		log.Err(err).Str("func", "fileStore.Put").Msg("failed to write content file")
		return fmt.Errorf("%w: %w", ErrWritingRecord, err)
	}

	version := strconv.FormatInt(data.Version, 10)
	if err = writeFileAtomic(dir, versionFileName, []byte(version)); err != nil {
		log.Err(err).Str("func", "fileStore.Put").Msg("failed to write version file")
		return fmt.Errorf("%w: %w", ErrWritingRecord, err)
	}

	return nil
}

func (f *fileStore) Get(ctx context.Context, key string) (models.SyncData, error) {
	log := logger.FromContext(ctx)

	dir, err := f.recordDir(key)
	if err != nil {
		return models.SyncData{}, err
	}

	rawVersion, err := os.ReadFile(filepath.Join(dir, versionFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return models.SyncData{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "fileStore.Get").Msg("failed to read version file")
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrReadingRecord, err)
	}

	content, err := os.ReadFile(filepath.Join(dir, contentFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return models.SyncData{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "fileStore.Get").Msg("failed to read content file")
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrReadingRecord, err)
	}

	version, err := strconv.ParseInt(strings.TrimSpace(string(rawVersion)), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "fileStore.Get").Msg("corrupted version file")
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrReadingRecord, err)
	}

	return models.SyncData{Version: version, Content: string(content)}, nil
}

func (f *fileStore) Contains(ctx context.Context, key string) bool {
	dir, err := f.recordDir(key)
	if err != nil {
		return false
	}

	_, err = os.Stat(filepath.Join(dir, versionFileName))
	switch {
	case err == nil:
		return true
	case errors.Is(err, fs.ErrNotExist):
		return false
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", "fileStore.Contains").
			Msg("cannot stat record, treating key as taken")
		return true
	}
}

func (f *fileStore) recordDir(key string) (string, error) {
	rel, err := ShardPath(key)
	if err != nil {
		return "", err
	}

	return filepath.Join(f.basePath, rel), nil
}

func writeFileAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(dir, name))
}
