// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io/fs"
	"os"
	"sync"
)

// fileDocumentBackend keeps the document in a YAML file guarded by an
// advisory lock file next to it.
type fileDocumentBackend struct {
	path string
}

// NewFileDocumentBackend returns a [DocumentBackend] storing the document at
// path.
func NewFileDocumentBackend(path string) DocumentBackend {
	return &fileDocumentBackend{path: path}
}

func (b *fileDocumentBackend) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(b.path)
}

func (b *fileDocumentBackend) Write(_ context.Context, data []byte) error {
	return writeFileAtomic(b.path, data, 0o600)
}

func (b *fileDocumentBackend) Lock(ctx context.Context) (func() error, error) {
	return lockFile(ctx, b.path)
}

// MemoryDocumentBackend keeps the document in memory. Used by tests and
// by tools that must not touch the disk.
type MemoryDocumentBackend struct {
	mu     sync.Mutex
	data   []byte
	writes int
}

// NewMemoryDocumentBackend returns a backend preloaded with data. A nil
// data behaves like a missing document.
func NewMemoryDocumentBackend(data []byte) *MemoryDocumentBackend {
	return &MemoryDocumentBackend{data: data}
}

func (b *MemoryDocumentBackend) Read(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), b.data...), nil
}

func (b *MemoryDocumentBackend) Write(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data = append([]byte(nil), data...)
	b.writes++
	return nil
}

func (b *MemoryDocumentBackend) Lock(_ context.Context) (func() error, error) {
	return func() error { return nil }, nil
}

// Bytes returns a copy of the stored document.
func (b *MemoryDocumentBackend) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]byte(nil), b.data...)
}

// Writes reports how many times the document was written.
func (b *MemoryDocumentBackend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.writes
}
