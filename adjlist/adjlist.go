package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors returned by Read.
var (
	// ErrSyntax reports a malformed header, a non-numeric token or an odd pair count.
	ErrSyntax = errors.New("adjlist: syntax error")

	// ErrTooManyLines reports more vertex lines than the header's vertex count.
	ErrTooManyLines = errors.New("adjlist: more vertex lines than vertices")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 16 << 20

// Options configures Read.
type Options struct {
	// MirrorDedup adds an edge listed from both of its endpoints only once.
	MirrorDedup bool
}

// Option is a functional option for Read.
type Option func(*Options)

// WithMirrorDedup makes Read skip a listing (k, v, w) with v < k when line v
// already listed (v, k, w) that has not been matched yet.
func WithMirrorDedup() Option {
	return func(o *Options) {
		o.MirrorDedup = true
	}
}

// DefaultOptions returns the Read defaults: every listed pair becomes an edge.
func DefaultOptions() Options {
	return Options{MirrorDedup: false}
}

// mirrorKey identifies a pending listing lo→hi with weight w, lo < hi.
type mirrorKey struct {
	lo, hi int
	w      float64
}

// Read parses an adjacency list from r into a new graph.
//
// Errors are wrapped with their 1-based line number:
//   - ErrSyntax for a missing or malformed header, bad tokens, or an odd number of tokens.
//   - ErrTooManyLines for a non-blank vertex line beyond the header's count.
//   - core.ErrInvalidArgument, core.ErrIndexOutOfRange, core.ErrBadWeight from the graph.
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		g       *core.Graph
		lineNo  int
		vertex  int
		pending map[mirrorKey]int
	)
	if cfg.MirrorDedup {
		pending = make(map[mirrorKey]int)
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// Header: the vertex count, alone on its line.
		if g == nil {
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: header must hold only the vertex count, got %q", ErrSyntax, lineNo, line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad vertex count %q", ErrSyntax, lineNo, fields[0])
			}
			if g, err = core.NewGraph(n); err != nil {
				return nil, fmt.Errorf("adjlist: line %d: %w", lineNo, err)
			}
			continue
		}

		if vertex >= g.Size() {
			if line == "" {
				continue
			}
			return nil, fmt.Errorf("%w: line %d: graph has %d vertices", ErrTooManyLines, lineNo, g.Size())
		}
		if err := readVertexLine(g, vertex, lineNo, line, pending); err != nil {
			return nil, err
		}
		vertex++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("adjlist: read: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: missing vertex count", ErrSyntax)
	}

	return g, nil
}

// readVertexLine adds the edges listed for vertex k on line lineNo.
// pending is nil unless mirror deduplication is enabled.
func readVertexLine(g *core.Graph, k, lineNo int, line string, pending map[mirrorKey]int) error {
	fields := strings.Fields(line)
	if len(fields)%2 != 0 {
		return fmt.Errorf("%w: line %d: %d tokens, want neighbor/weight pairs", ErrSyntax, lineNo, len(fields))
	}

	for i := 0; i < len(fields); i += 2 {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return fmt.Errorf("%w: line %d: bad neighbor %q", ErrSyntax, lineNo, fields[i])
		}
		w, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: bad weight %q", ErrSyntax, lineNo, fields[i+1])
		}

		if pending != nil && v < k {
			key := mirrorKey{lo: v, hi: k, w: w}
			if pending[key] > 0 {
				pending[key]--
				continue
			}
		}
		if _, err := g.AddEdge(k, v, w); err != nil {
			return fmt.Errorf("adjlist: line %d: %w", lineNo, err)
		}
		if pending != nil && v > k {
			pending[mirrorKey{lo: k, hi: v, w: w}]++
		}
	}

	return nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, opts...)
}

// Write emits g in symmetric form: the vertex count, then one line per vertex
// listing every incident edge from that vertex's side. Self-loops appear once.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("adjlist: %w", core.ErrInvalidArgument)
	}

	bw := bufio.NewWriter(w)
	n := g.Size()
	fmt.Fprintf(bw, "%d\n", n)
	for v := 0; v < n; v++ {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for i, nb := range nbs {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(nb.Vertex))
			bw.WriteByte(' ')
			bw.WriteString(core.FormatWeight(nb.Weight))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
