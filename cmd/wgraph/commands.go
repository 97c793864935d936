package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/wgraph/adjlist"
	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/render"
)

// app carries the flag values and the I/O streams shared by all subcommands.
type app struct {
	in  io.Reader
	out io.Writer

	file    string
	dedup   bool
	verbose bool

	method string
	root   int
	source int
	target int
	mst    bool
	name   string

	gen genFlags
}

// genFlags holds the options of the gen subcommand.
type genFlags struct {
	shape      string
	n          int
	rows, cols int
	p          float64
	extra      int
	seed       int64
	wmin, wmax float64
	integer    bool
}

// errBadFlag reports a flag value the command cannot use.
var errBadFlag = errors.New("wgraph: invalid flag value")

func newCommand(in io.Reader, out io.Writer) *commander.Command {
	a := &app{in: in, out: out}

	return &commander.Command{
		UsageLine: "wgraph <command> [options]",
		Short:     "inspect weighted undirected graphs",
		Subcommands: []*commander.Command{
			a.printCmd(),
			a.mstCmd(),
			a.pathsCmd(),
			a.dotCmd(),
			a.genCmd(),
		},
		Flag: *flag.NewFlagSet("wgraph", flag.ExitOnError),
	}
}

// inputFlags registers the options every subcommand uses to load its graph.
func (a *app) inputFlags(fs *flag.FlagSet) {
	fs.StringVar(&a.file, "f", "", "adjacency-list input file (default: standard input)")
	fs.BoolVar(&a.dedup, "dedup", false, "add edges listed from both endpoints only once")
	fs.BoolVar(&a.verbose, "v", false, "log the loaded configuration")
}

func (a *app) load() (*core.Graph, error) {
	var opts []adjlist.Option
	if a.dedup {
		opts = append(opts, adjlist.WithMirrorDedup())
	}

	var (
		g   *core.Graph
		err error
	)
	if a.file == "" || a.file == "-" {
		g, err = adjlist.Read(a.in, opts...)
	} else {
		g, err = adjlist.ReadFile(a.file, opts...)
	}
	if err != nil {
		return nil, err
	}

	if a.verbose {
		log.Println("Configuration")
		log.Printf("Input:   \t%s", a.inputName())
		log.Printf("Dedup:   \t%v", a.dedup)
		log.Printf("Vertices:\t%d", g.Size())
		log.Printf("Edges:   \t%d", g.EdgeCount())
	}

	return g, nil
}

func (a *app) inputName() string {
	if a.file == "" {
		return "-"
	}

	return a.file
}

func (a *app) spanningTree(g *core.Graph) (*core.Graph, error) {
	return prim_kruskal.Compute(g, prim_kruskal.WithMethod(a.method), prim_kruskal.WithRoot(a.root))
}

func (a *app) runPrint(cmd *commander.Command, args []string) error {
	g, err := a.load()
	if err != nil {
		return err
	}

	return render.Graph(a.out, g)
}

func (a *app) printCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.runPrint,
		UsageLine: "print [-f file] [-dedup]",
		Short:     "print every vertex with its (neighbor, weight) pairs",
		Flag:      *flag.NewFlagSet("print", flag.ExitOnError),
	}
	a.inputFlags(&cmd.Flag)

	return cmd
}

func (a *app) runMST(cmd *commander.Command, args []string) error {
	g, err := a.load()
	if err != nil {
		return err
	}
	tree, err := a.spanningTree(g)
	if err != nil {
		return err
	}
	if err := render.Graph(a.out, tree); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Total weight: %s\n", core.FormatWeight(tree.TotalWeight()))

	return err
}

func (a *app) mstCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.runMST,
		UsageLine: "mst [-f file] [-dedup] [-method prim|kruskal] [-root v]",
		Short:     "print the minimum spanning tree and its total weight",
		Long: `
print the minimum spanning tree of a connected graph

	$ wgraph mst -f graph.txt -method kruskal

A disconnected graph is an error.
`,
		Flag: *flag.NewFlagSet("mst", flag.ExitOnError),
	}
	a.inputFlags(&cmd.Flag)
	a.treeFlags(&cmd.Flag)

	return cmd
}

// treeFlags registers the spanning-tree options shared by mst and dot.
func (a *app) treeFlags(fs *flag.FlagSet) {
	fs.StringVar(&a.method, "method", prim_kruskal.MethodPrim, "spanning tree algorithm: prim or kruskal")
	fs.IntVar(&a.root, "root", 0, "root vertex for prim")
}

func (a *app) runPaths(cmd *commander.Command, args []string) error {
	g, err := a.load()
	if err != nil {
		return err
	}
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(a.source), dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	if a.target < 0 {
		return render.Distances(a.out, a.source, dist)
	}

	route, err := dijkstra.PathTo(prev, a.source, a.target)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Path from %d to %d: %v (distance %s)\n",
		a.source, a.target, route, core.FormatWeight(dist[a.target]))

	return err
}

func (a *app) pathsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.runPaths,
		UsageLine: "paths [-f file] [-dedup] -s source [-to target]",
		Short:     "print shortest distances from a source vertex",
		Long: `
print the shortest distance from a source vertex to every vertex

	$ wgraph paths -f graph.txt -s 0

With -to, print the vertices on one shortest path instead.
`,
		Flag: *flag.NewFlagSet("paths", flag.ExitOnError),
	}
	a.inputFlags(&cmd.Flag)
	cmd.Flag.IntVar(&a.source, "s", 0, "source vertex")
	cmd.Flag.IntVar(&a.target, "to", -1, "target vertex for a single path")

	return cmd
}

func (a *app) runDot(cmd *commander.Command, args []string) error {
	g, err := a.load()
	if err != nil {
		return err
	}
	if a.mst {
		if g, err = a.spanningTree(g); err != nil {
			return err
		}
	}

	return render.Dot(a.out, g, a.name)
}

func (a *app) dotCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.runDot,
		UsageLine: "dot [-f file] [-dedup] [-mst] [-name n]",
		Short:     "write the graph in Graphviz dot format",
		Flag:      *flag.NewFlagSet("dot", flag.ExitOnError),
	}
	a.inputFlags(&cmd.Flag)
	a.treeFlags(&cmd.Flag)
	cmd.Flag.BoolVar(&a.mst, "mst", false, "draw the minimum spanning tree instead")
	cmd.Flag.StringVar(&a.name, "name", "wgraph", "graph name")

	return cmd
}

// constructor maps the -shape flag to a builder constructor.
func (f genFlags) constructor() (int, builder.Constructor, error) {
	switch f.shape {
	case "path":
		return f.n, builder.Path(f.n), nil
	case "cycle":
		return f.n, builder.Cycle(f.n), nil
	case "star":
		return f.n, builder.Star(f.n), nil
	case "complete":
		return f.n, builder.Complete(f.n), nil
	case "grid":
		return f.rows * f.cols, builder.Grid(f.rows, f.cols), nil
	case "sparse":
		return f.n, builder.RandomSparse(f.n, f.p), nil
	case "connected":
		return f.n, builder.RandomConnected(f.n, f.extra), nil
	default:
		return 0, nil, fmt.Errorf("%w: unknown shape %q", errBadFlag, f.shape)
	}
}

// weights maps the weight flags to a builder option.
func (f genFlags) weights() (builder.BuilderOption, error) {
	if !(f.wmin >= 0 && f.wmax >= f.wmin) || math.IsInf(f.wmax, 1) {
		return nil, fmt.Errorf("%w: weight range [%g, %g]", errBadFlag, f.wmin, f.wmax)
	}
	if f.integer {
		if f.wmin != math.Trunc(f.wmin) || f.wmax != math.Trunc(f.wmax) {
			return nil, fmt.Errorf("%w: -int needs integral bounds, got [%g, %g]", errBadFlag, f.wmin, f.wmax)
		}
		return builder.WithIntWeight(int(f.wmin), int(f.wmax)), nil
	}

	return builder.WithUniformWeight(f.wmin, f.wmax), nil
}

func (a *app) runGen(cmd *commander.Command, args []string) error {
	n, ctor, err := a.gen.constructor()
	if err != nil {
		return err
	}
	weights, err := a.gen.weights()
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(n, nil, []builder.BuilderOption{builder.WithSeed(a.gen.seed), weights}, ctor)
	if err != nil {
		return err
	}
	if a.verbose {
		log.Printf("Generated %s: %d vertices, %d edges", a.gen.shape, g.Size(), g.EdgeCount())
	}

	return adjlist.Write(a.out, g)
}

func (a *app) genCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.runGen,
		UsageLine: "gen -shape s [-n n] [options]",
		Short:     "write a generated graph in adjacency-list format",
		Long: `
write a generated graph in adjacency-list format

	$ wgraph gen -shape connected -n 50 -extra 100 -seed 7 > graph.txt
	$ wgraph gen -shape grid -rows 4 -cols 5 -int -wmin 1 -wmax 9 | wgraph mst -dedup

Shapes: path, cycle, star, complete, grid, sparse, connected.
`,
		Flag: *flag.NewFlagSet("gen", flag.ExitOnError),
	}
	fs := &cmd.Flag
	fs.StringVar(&a.gen.shape, "shape", "connected", "graph shape")
	fs.IntVar(&a.gen.n, "n", 10, "vertex count (all shapes but grid)")
	fs.IntVar(&a.gen.rows, "rows", 3, "grid rows")
	fs.IntVar(&a.gen.cols, "cols", 3, "grid columns")
	fs.Float64Var(&a.gen.p, "p", 0.3, "edge probability for sparse")
	fs.IntVar(&a.gen.extra, "extra", 0, "edges beyond the spanning tree for connected")
	fs.Int64Var(&a.gen.seed, "seed", 1, "random seed")
	fs.Float64Var(&a.gen.wmin, "wmin", 1, "minimum edge weight")
	fs.Float64Var(&a.gen.wmax, "wmax", 1, "maximum edge weight")
	fs.BoolVar(&a.gen.integer, "int", false, "draw integer weights")
	fs.BoolVar(&a.verbose, "v", false, "log what was generated")

	return cmd
}
