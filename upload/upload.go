package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/juho05/log"
)

// PublicPrefix is the URL path prefix under which stored images are served.
const PublicPrefix = "/images"

// Error reports a failed upload. It wraps I/O and multipart decoding
// failures so callers can distinguish them from other request errors.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("upload: %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// Handler persists uploaded image files into a directory on disk and hands
// out the public paths they will be served under.
type Handler struct {
	dir string
}

func NewHandler(dir string) (*Handler, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("new upload handler: %w", err)
	}
	return &Handler{
		dir: dir,
	}, nil
}

// Dir returns the directory uploads are written to.
func (h *Handler) Dir() string {
	return h.dir
}

// Accept writes exactly one file into the upload directory and returns its
// public path. The storage name is <field>-<nanosecond timestamp><extension
// of originalName>, which avoids collisions without hashing the content.
func (h *Handler) Accept(file io.Reader, field, originalName string) (string, error) {
	name := field + "-" + strconv.FormatInt(time.Now().UnixNano(), 10) + filepath.Ext(originalName)

	f, err := os.OpenFile(filepath.Join(h.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", newError("create file", err)
	}
	_, err = io.Copy(f, file)
	if err != nil {
		f.Close()
		if removeErr := os.Remove(f.Name()); removeErr != nil {
			log.Errorf("remove partial upload %s: %s", f.Name(), removeErr)
		}
		return "", newError("write file", err)
	}
	err = f.Close()
	if err != nil {
		return "", newError("close file", err)
	}

	return path.Join(PublicPrefix, name), nil
}
