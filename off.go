package meshlab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// offReader yields the non-blank, non-comment records of an OFF body.
type offReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *offReader) next() ([]string, bool) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return strings.Fields(text), true
	}
	return nil, false
}

func (r *offReader) errorf(format string, args ...any) *ParseError {
	return &ParseError{Format: FormatOFF, Line: r.line, Msg: fmt.Sprintf(format, args...)}
}

// readOFF reads an ASCII Object File Format mesh: the OFF keyword, a
// "V F [E]" count line, V vertex records and F face records with 0-based
// indices. Extra trailing tokens on a record (colors) are ignored.
func readOFF(rd io.Reader) (*Mesh, error) {
	r := &offReader{scanner: newLineScanner(rd)}

	header := ""
	for r.scanner.Scan() {
		r.line++
		header = strings.TrimSpace(r.scanner.Text())
		if header != "" {
			break
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatOFF, Line: r.line, Msg: "read failed", Err: err}
	}
	if header != "OFF" {
		return nil, r.errorf("missing OFF header")
	}

	counts, ok := r.next()
	if !ok {
		return nil, r.truncated("counts line")
	}
	if len(counts) < 2 {
		return nil, r.errorf("counts line needs vertex and face counts")
	}
	numVertices, err := strconv.Atoi(counts[0])
	if err != nil || numVertices < 0 {
		return nil, &ParseError{Format: FormatOFF, Line: r.line, Msg: "invalid vertex count " + strconv.Quote(counts[0]), Err: err}
	}
	numFaces, err := strconv.Atoi(counts[1])
	if err != nil || numFaces < 0 {
		return nil, &ParseError{Format: FormatOFF, Line: r.line, Msg: "invalid face count " + strconv.Quote(counts[1]), Err: err}
	}

	m := &Mesh{}
	for i := 0; i < numVertices; i++ {
		parts, ok := r.next()
		if !ok {
			return nil, r.truncated(fmt.Sprintf("vertex %d of %d", i+1, numVertices))
		}
		if len(parts) < 3 {
			return nil, r.errorf("vertex needs 3 coordinates")
		}
		v, err := parseVec3(parts)
		if err != nil {
			return nil, &ParseError{Format: FormatOFF, Line: r.line, Msg: "invalid vertex coordinate", Err: err}
		}
		m.Vertices = append(m.Vertices, v)
	}

	for i := 0; i < numFaces; i++ {
		parts, ok := r.next()
		if !ok {
			return nil, r.truncated(fmt.Sprintf("face %d of %d", i+1, numFaces))
		}
		k, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, &ParseError{Format: FormatOFF, Line: r.line, Msg: "invalid face size", Err: err}
		}
		if k < 3 {
			return nil, r.errorf("face needs at least 3 vertices, got %d", k)
		}
		if len(parts)-1 < k {
			return nil, r.errorf("face declares %d vertices but lists %d", k, len(parts)-1)
		}
		face := make(Face, k)
		for j := 0; j < k; j++ {
			idx, err := strconv.Atoi(parts[j+1])
			if err != nil {
				return nil, &ParseError{Format: FormatOFF, Line: r.line, Msg: "invalid face index", Err: err}
			}
			if idx < 0 || idx >= numVertices {
				return nil, r.errorf("face index %d out of range, have %d vertices", idx, numVertices)
			}
			face[j] = idx
		}
		m.Faces = append(m.Faces, face)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatOFF, Line: r.line, Msg: "read failed", Err: err}
	}
	return m, nil
}

func (r *offReader) truncated(what string) *ParseError {
	if err := r.scanner.Err(); err != nil {
		return &ParseError{Format: FormatOFF, Line: r.line, Msg: "read failed", Err: err}
	}
	return &ParseError{Format: FormatOFF, Msg: "unexpected end of file reading " + what}
}

func writeOFF(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OFF\n%d %d 0\n", len(m.Vertices), len(m.Faces))
	for _, v := range m.Vertices {
		writeVec3(bw, v)
		bw.WriteByte('\n')
	}
	for _, f := range m.Faces {
		bw.WriteString(strconv.Itoa(len(f)))
		for _, idx := range f {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(idx))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
