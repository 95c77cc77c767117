package archive

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// SaveFile writes an archive to filename atomically: writeFunc writes to a
// temporary file in the same directory, which then replaces filename.
func SaveFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0o644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrap(err, "flush archive")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync archive")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close archive")
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return errors.Wrap(err, "rename archive")
	}
	return nil
}

// LoadFile opens filename and passes it to readFunc.
func LoadFile(filename string, readFunc func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open archive")
	}
	defer f.Close()

	return readFunc(bufio.NewReader(f))
}
