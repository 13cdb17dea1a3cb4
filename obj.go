package meshlab

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const maxLineSize = 1 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// readOBJ reads the "v" and "f" records of a Wavefront OBJ file. Everything
// else (comments, normals, texture coordinates, groups) is skipped.
func readOBJ(r io.Reader) (*Mesh, error) {
	scanner := newLineScanner(r)
	m := &Mesh{}
	var faceLines []int
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			parts := strings.Fields(line)
			if len(parts) < 4 {
				return nil, &ParseError{Format: FormatOBJ, Line: lineNo, Msg: "vertex needs 3 coordinates"}
			}
			v, err := parseVec3(parts[1:4])
			if err != nil {
				return nil, &ParseError{Format: FormatOBJ, Line: lineNo, Msg: "invalid vertex coordinate", Err: err}
			}
			m.Vertices = append(m.Vertices, v)

		case strings.HasPrefix(line, "f "):
			parts := strings.Fields(line)[1:]
			if len(parts) < 3 {
				return nil, &ParseError{Format: FormatOBJ, Line: lineNo, Msg: "face needs at least 3 vertices"}
			}
			face := make(Face, len(parts))
			for i, part := range parts {
				vertexInfo, _, _ := strings.Cut(part, "/")
				idx, err := strconv.Atoi(vertexInfo)
				if err != nil {
					return nil, &ParseError{Format: FormatOBJ, Line: lineNo, Msg: "invalid face index", Err: err}
				}
				if idx < 1 {
					return nil, &ParseError{Format: FormatOBJ, Line: lineNo, Msg: "face index " + vertexInfo + " is not a positive absolute index"}
				}
				face[i] = idx - 1
			}
			m.Faces = append(m.Faces, face)
			faceLines = append(faceLines, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatOBJ, Line: lineNo, Msg: "read failed", Err: err}
	}

	// Faces may precede the vertices they use, so ranges are checked last.
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx >= len(m.Vertices) {
				return nil, &ParseError{
					Format: FormatOBJ,
					Line:   faceLines[i],
					Msg:    "face index " + strconv.Itoa(idx+1) + " out of range, have " + strconv.Itoa(len(m.Vertices)) + " vertices",
				}
			}
		}
	}
	return m, nil
}

func writeOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		bw.WriteString("v ")
		writeVec3(bw, v)
		bw.WriteByte('\n')
	}
	for _, f := range m.Faces {
		bw.WriteString("f")
		for _, idx := range f {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(idx + 1))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func parseVec3(parts []string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return v, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v, fmt.Errorf("coordinate %q is not finite", parts[i])
		}
		v[i] = f
	}
	return v, nil
}

func writeVec3(bw *bufio.Writer, v mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(v[i], 'g', -1, 64))
	}
}
