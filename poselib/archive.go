/*
 * archive.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package poselib writes a sequence of scored poses to a single archive
// file, optionally zstd-compressed, so a caller can accumulate results from
// many evaluations without holding them all in memory.
package poselib

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// ArchiveWriter appends PDBQT MODEL blocks to a single output stream. It
// closes both the compressor and the underlying file on Close, the same
// two-layer teardown the trajectory writer this type is modeled on uses.
type ArchiveWriter struct {
	f  *os.File
	zw *zstd.Encoder
	w  *bufio.Writer
}

// NewArchiveWriter creates path and returns a writer for it. When
// compressed is true, models are streamed through a zstd encoder before
// hitting disk.
func NewArchiveWriter(path string, compressed bool) (*ArchiveWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	a := &ArchiveWriter{f: f}
	var dst io.Writer = f
	if compressed {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		a.zw = zw
		dst = zw
	}
	a.w = bufio.NewWriter(dst)
	return a, nil
}

// WriteModel appends one already-rendered PDBQT MODEL block.
func (a *ArchiveWriter) WriteModel(block string) error {
	_, err := a.w.WriteString(block)
	return err
}

// Close flushes and closes every layer, in the order they must close.
func (a *ArchiveWriter) Close() error {
	if err := a.w.Flush(); err != nil {
		return err
	}
	if a.zw != nil {
		if err := a.zw.Close(); err != nil {
			return err
		}
	}
	return a.f.Close()
}
