package fs

import (
	"io"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

// CopyFile copies srcName in src to dstName in dst, creating parent directories.
func CopyFile(src ports.Directory, srcName string, dst ports.Directory, dstName string) error {
	r, err := src.OpenRead(srcName)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck // Read only

	w, err := dst.Create(dstName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", dstName)
	}
	if err := w.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", dstName)
	}
	return nil
}
