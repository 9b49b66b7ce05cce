// Getting bytes out of an input file. Compressed files go through a
// gzip reader; plain files are mapped into memory, which saves a
// copy on the big scaffold-bearing structures.

package parse

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// readSeekCloser does not seem to be in the standard library.
type readSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// wrapMaybe decides if the underlying stream is compressed and wraps
// it if so. If the gzip header is not there, it seeks back and hands
// the plain stream on.
func wrapMaybe(fp readSeekCloser) (io.Reader, error) {
	if zr, err := gzip.NewReader(fp); err == nil {
		return zr, nil
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return fp, nil
}

func noClose() error { return nil }

// slurp returns the whole file as bytes plus a function to give the
// bytes back. Compressed files are read through gzip; anything else
// is mapped, with a plain read as the fallback for filesystems that
// will not map.
func slurp(fname string) ([]byte, func() error, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	if zr, err := gzip.NewReader(fp); err == nil {
		b, err := io.ReadAll(zr)
		if e2 := zr.Close(); err == nil {
			err = e2
		}
		if e2 := fp.Close(); err == nil {
			err = e2
		}
		if err != nil {
			return nil, nil, err
		}
		return b, noClose, nil
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		fp.Close()
		return nil, nil, err
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		b, e2 := io.ReadAll(fp)
		fp.Close()
		if e2 != nil {
			return nil, nil, e2
		}
		return b, noClose, nil
	}
	closer := func() error {
		e := mm.Unmap()
		if e2 := fp.Close(); e == nil {
			e = e2
		}
		return e
	}
	return mm, closer, nil
}
