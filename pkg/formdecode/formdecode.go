// Package formdecode turns HTTP form submissions into entity records. It
// reduces every multipart part, in arrival order, into a flat query string,
// runs the nested bracket parse and hands the tree to the entity schema.
//
// File parts are streamed into a staging directory while decoding. Only
// after the whole submission decodes successfully are staged files promoted
// to blob storage; a failed submission leaves storage untouched.
package formdecode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/typecms/typecms/pkg/blob"
	"github.com/typecms/typecms/pkg/qs"
	"github.com/typecms/typecms/pkg/schema"
)

var (
	// ErrContentType is returned for request bodies that are neither
	// multipart/form-data nor application/x-www-form-urlencoded.
	ErrContentType = errors.New("formdecode: unsupported content type")

	// ErrFilename is returned when an uploaded filename contains a path
	// separator. Filenames become path segments of the storage key, so
	// separators are rejected outright rather than sanitized.
	ErrFilename = errors.New("formdecode: filename contains a path separator")

	// ErrTooLarge is returned when a part exceeds its size limit.
	ErrTooLarge = errors.New("formdecode: part exceeds size limit")

	// ErrNoStorage is returned when a file is uploaded but the decoder has
	// no storage to promote it into.
	ErrNoStorage = errors.New("formdecode: no upload storage configured")
)

const (
	defaultMaxValueBytes  = 1 << 20
	defaultMaxUploadBytes = 64 << 20
)

// Decoder decodes form submissions for registered entities.
type Decoder struct {
	storage   blob.Storage
	maxValue  int64
	maxUpload int64
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxValueBytes caps the size of one non-file part (and of a whole
// urlencoded body). Default 1 MiB.
func WithMaxValueBytes(n int64) Option {
	return func(d *Decoder) { d.maxValue = n }
}

// WithMaxUploadBytes caps the size of one uploaded file. Default 64 MiB.
func WithMaxUploadBytes(n int64) Option {
	return func(d *Decoder) { d.maxUpload = n }
}

// New returns a Decoder that promotes uploads into storage.
func New(storage blob.Storage, opts ...Option) *Decoder {
	d := &Decoder{
		storage:   storage,
		maxValue:  defaultMaxValueBytes,
		maxUpload: defaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads the request body and returns a record matching the entity's
// schema. The id field is never taken from the body.
func (d *Decoder) Decode(ctx context.Context, r *http.Request, e *schema.Entity) (schema.Record, error) {
	mt, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentType, err)
	}
	switch mt {
	case "multipart/form-data":
		boundary, ok := params["boundary"]
		if !ok {
			return nil, fmt.Errorf("%w: multipart without boundary", ErrContentType)
		}
		return d.decodeMultipart(ctx, r.Body, boundary, e)
	case "application/x-www-form-urlencoded":
		body, err := readLimited(r.Body, d.maxValue)
		if err != nil {
			return nil, err
		}
		form, err := qs.Parse([]byte(body))
		if err != nil {
			return nil, err
		}
		return e.DecodeForm(form)
	default:
		return nil, fmt.Errorf("%w: %q", ErrContentType, mt)
	}
}

// stagedFile is an upload written to the staging directory but not yet
// promoted to storage.
type stagedFile struct {
	key  string
	path string
	size int64
}

func (d *Decoder) decodeMultipart(ctx context.Context, body io.Reader, boundary string, e *schema.Entity) (schema.Record, error) {
	staging, err := os.MkdirTemp("", "formdecode-*")
	if err != nil {
		return nil, fmt.Errorf("formdecode: create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	var (
		buf    qs.Buffer
		staged []stagedFile
	)
	mr := multipart.NewReader(body, boundary)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("formdecode: read part: %w", err)
		}

		filename, isFile, err := partFilename(part)
		if err != nil {
			part.Close()
			return nil, err
		}
		switch {
		case !isFile:
			val, err := readLimited(part, d.maxValue)
			part.Close()
			if err != nil {
				return nil, err
			}
			buf.Add(part.FormName(), val)
		case filename == "":
			// an empty file input submits a part with filename="";
			// nothing was chosen, so the part contributes nothing
			part.Close()
		default:
			sf, err := d.stage(staging, part, filename)
			part.Close()
			if err != nil {
				return nil, err
			}
			staged = append(staged, sf)
			id := strings.SplitN(sf.key, "/", 2)[0]
			buf.Add(part.FormName()+"[id]", id)
			buf.Add(part.FormName()+"[name]", filename)
		}
	}

	form, err := qs.Parse(buf.Bytes())
	if err != nil {
		return nil, err
	}
	rec, err := e.DecodeForm(form)
	if err != nil {
		return nil, err
	}
	if err := d.promote(ctx, staged); err != nil {
		return nil, err
	}
	return rec, nil
}

// stage streams one file part into the staging directory.
func (d *Decoder) stage(staging string, part *multipart.Part, filename string) (stagedFile, error) {
	if d.storage == nil {
		return stagedFile{}, ErrNoStorage
	}
	if strings.ContainsAny(filename, `/\`) {
		return stagedFile{}, fmt.Errorf("%w: %q", ErrFilename, filename)
	}
	id := uuid.New().String()
	path := filepath.Join(staging, id)
	f, err := os.Create(path)
	if err != nil {
		return stagedFile{}, fmt.Errorf("formdecode: stage upload: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(part, d.maxUpload+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return stagedFile{}, fmt.Errorf("formdecode: stage upload: %w", err)
	}
	if n > d.maxUpload {
		return stagedFile{}, fmt.Errorf("%w: upload %q", ErrTooLarge, filename)
	}
	return stagedFile{key: id + "/" + filename, path: path, size: n}, nil
}

// promote moves staged files into storage. On failure the files promoted so
// far are deleted again so a half-committed submission leaves no orphans.
func (d *Decoder) promote(ctx context.Context, staged []stagedFile) error {
	for i, sf := range staged {
		if err := d.putOne(ctx, sf); err != nil {
			for _, done := range staged[:i] {
				_ = d.storage.Delete(ctx, done.key)
			}
			return fmt.Errorf("formdecode: store upload: %w", err)
		}
	}
	return nil
}

func (d *Decoder) putOne(ctx context.Context, sf stagedFile) error {
	f, err := os.Open(sf.path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = d.storage.Put(ctx, sf.key, f, sf.size)
	return err
}

// partFilename reports whether the part is a file part and its filename.
// Presence of the filename parameter, not its value, marks a file part.
func partFilename(part *multipart.Part) (string, bool, error) {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return "", false, fmt.Errorf("formdecode: part disposition: %w", err)
	}
	filename, ok := params["filename"]
	return filename, ok, nil
}

func readLimited(r io.Reader, limit int64) (string, error) {
	var sb strings.Builder
	n, err := io.Copy(&sb, io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("formdecode: read value: %w", err)
	}
	if n > limit {
		return "", ErrTooLarge
	}
	return sb.String(), nil
}
