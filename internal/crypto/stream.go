package crypto

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const defaultBufferSize = 32 * 1024 // 32KB default chunk size

// bufferPool provides reusable chunk buffers for the stream loop.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, defaultBufferSize)
	},
}

// Process drives r through the cipher in chunks and writes the output to w.
// The destination receives exactly the concatenation of every Update output
// followed by the Finalize output, regardless of the configured chunk size.
// The context is consumed; it cannot be reused afterwards.
func (c *Crypto) Process(r io.Reader, w io.Writer) error {
	var buf []byte

	if c.bufferSize == defaultBufferSize {
		buf = bufferPool.Get().([]byte)
		defer bufferPool.Put(buf) //nolint:staticcheck // pool of slices, matching sync.Pool usage elsewhere
	} else {
		buf = make([]byte, c.bufferSize)
	}

	for {
		n, err := r.Read(buf)
		if n > 0 {
			out, uerr := c.Update(buf[:n])
			if uerr != nil {
				return fmt.Errorf("updating cipher: %w", uerr)
			}

			if len(out) > 0 {
				if _, werr := w.Write(out); werr != nil {
					return fmt.Errorf("writing output: %w", werr)
				}
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	out, err := c.Finalize()
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing final block: %w", err)
	}

	return nil
}

// Execute encrypts or decrypts the file at srcPath into dstPath using
// buffered I/O. Both files are closed on every exit path; a partially
// written destination is not removed on failure.
func (c *Crypto) Execute(srcPath, dstPath string) error {
	src, err := os.Open(filepath.Clean(srcPath))
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Clean(dstPath))
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	defer dst.Close()

	out := bufio.NewWriter(dst)

	if err := c.Process(src, out); err != nil {
		return err
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("flushing destination: %w", err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("closing destination: %w", err)
	}

	return nil
}
