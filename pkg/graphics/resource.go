package graphics

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Decoder registrations for image.DecodeConfig. The stdlib formats
	// cover PNG/JPEG/GIF; the golang.org/x/image formats extend support
	// to the container formats mobile asset pipelines commonly produce.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ResourceKind identifies how a [Resource] refers to its data.
type ResourceKind int

const (
	// ResourceNone is the zero resource; it refers to nothing.
	ResourceNone ResourceKind = iota
	// ResourceFile refers to an image by absolute file path.
	ResourceFile
	// ResourceEmbedded carries the encoded image bytes inline.
	ResourceEmbedded
)

// Resource is an opaque handle to an image asset. The renderer and the
// reflection bridge pass it through without looking at the pixel data;
// only Width and Height are decoded eagerly so layout can run without
// touching the decoder again.
type Resource struct {
	Kind   ResourceKind
	Path   string
	Data   []byte
	Width  int
	Height int
}

// LoadResource reads an image file and returns a file-backed resource with
// its intrinsic size decoded. The pixel data itself is not decoded.
func LoadResource(path string) (Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Resource{}, fmt.Errorf("failed to read resource %s: %w", path, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Resource{}, fmt.Errorf("failed to decode resource %s: %w", path, err)
	}
	return Resource{Kind: ResourceFile, Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}

// EmbeddedResource wraps already-encoded image bytes as a resource.
// Size decoding is best effort: unknown formats produce a zero size.
func EmbeddedResource(data []byte) Resource {
	r := Resource{Kind: ResourceEmbedded, Data: data}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		r.Width, r.Height = cfg.Width, cfg.Height
	}
	return r
}

// Equal reports whether two resources refer to the same asset.
// Embedded resources compare by content.
func (r Resource) Equal(o Resource) bool {
	if r.Kind != o.Kind {
		return false
	}
	switch r.Kind {
	case ResourceFile:
		return r.Path == o.Path
	case ResourceEmbedded:
		return bytes.Equal(r.Data, o.Data)
	default:
		return true
	}
}

// String returns a short description for inspector output.
func (r Resource) String() string {
	switch r.Kind {
	case ResourceFile:
		return fmt.Sprintf("file(%s, %dx%d)", r.Path, r.Width, r.Height)
	case ResourceEmbedded:
		return fmt.Sprintf("embedded(%d bytes, %dx%d)", len(r.Data), r.Width, r.Height)
	default:
		return "none"
	}
}
