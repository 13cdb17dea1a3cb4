package meshlab

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Format selects a mesh file codec.
type Format int

const (
	FormatOBJ Format = iota + 1
	FormatOFF
)

func (f Format) String() string {
	switch f {
	case FormatOBJ:
		return "obj"
	case FormatOFF:
		return "off"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name ("obj", "OFF", ".obj") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "obj":
		return FormatOBJ, nil
	case "off":
		return FormatOFF, nil
	default:
		return 0, &UnsupportedFormatError{Name: name}
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, &UnsupportedFormatError{Name: filepath.Base(path)}
	}
	return ParseFormat(ext)
}

func (f Format) decode(r io.Reader) (*Mesh, error) {
	switch f {
	case FormatOBJ:
		return readOBJ(r)
	case FormatOFF:
		return readOFF(r)
	default:
		return nil, &UnsupportedFormatError{Name: f.String()}
	}
}

// Load parses a mesh, computes its vertex normals and normalizes it to a unit
// bounding box at the origin. On error no mesh is returned.
func Load(r io.Reader, f Format) (*Mesh, error) {
	m, err := f.decode(r)
	if err != nil {
		return nil, err
	}
	m.CalculateNormals()
	m.Normalize()
	slog.Debug("mesh loaded", "format", f, "vertices", len(m.Vertices), "faces", len(m.Faces))
	return m, nil
}

// LoadFile opens path and loads it with the given format.
func LoadFile(path string, f Format) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file %s: %w", path, err)
	}
	defer file.Close()

	m, err := Load(file, f)
	if err != nil {
		return nil, fmt.Errorf("error loading mesh file %s: %w", path, err)
	}
	return m, nil
}

// LoadPath loads path, choosing the format from its extension.
func LoadPath(path string) (*Mesh, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadFile(path, f)
}

// Save writes m in the given format.
func Save(w io.Writer, m *Mesh, f Format) error {
	switch f {
	case FormatOBJ:
		return writeOBJ(w, m)
	case FormatOFF:
		return writeOFF(w, m)
	default:
		return &UnsupportedFormatError{Name: f.String()}
	}
}

// SaveFile creates path and writes m to it.
func SaveFile(path string, m *Mesh, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create mesh file %s: %w", path, err)
	}
	if err := Save(file, m, f); err != nil {
		file.Close()
		return fmt.Errorf("error writing mesh file %s: %w", path, err)
	}
	return file.Close()
}
