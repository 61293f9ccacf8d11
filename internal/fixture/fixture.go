// Package fixture loads YAML scenario files used by table-driven tests.
//
// A scenario file looks like:
//
//	scenarios:
//	  - name: diamond
//	    vertices: 4
//	    directed: true
//	    edges: [[0, 1, 4], [0, 2, 1]]
//	    source: 0
//	    want:
//	      dist: [0, 3, 1, .inf]
//
// YAML's .inf literal decodes to +Inf, which is how unreachable vertices are
// written.
package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

// ErrBadEdge indicates an edge entry that is not [from, to] or [from, to, weight].
var ErrBadEdge = errors.New("fixture: edge must be [from, to] or [from, to, weight]")

// Suite is the root of a scenario file.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one graph plus the expectations a test checks against it.
type Scenario struct {
	Name     string      `yaml:"name"`
	Vertices int         `yaml:"vertices"`
	Directed bool        `yaml:"directed"`
	Loops    bool        `yaml:"loops"`
	Edges    [][]float64 `yaml:"edges"`
	Source   int         `yaml:"source"`
	Target   *int        `yaml:"target"`
	Want     Want        `yaml:"want"`
}

// Want holds the expected outcomes. Unset fields are not checked.
type Want struct {
	Dist         []float64 `yaml:"dist"`
	Total        *float64  `yaml:"total"`
	Path         []int     `yaml:"path"`
	Order        [][]int   `yaml:"order"`
	Disconnected bool      `yaml:"disconnected"`
	Unreachable  bool      `yaml:"unreachable"`
}

// Load reads and decodes the suite at path.
func Load(path string) (*Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	var s Suite
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("fixture: decode %s: %w", path, err)
	}

	return &s, nil
}

// CoreEdges converts the raw edge rows; a missing weight becomes 0.
func (sc Scenario) CoreEdges() ([]core.Edge, error) {
	out := make([]core.Edge, 0, len(sc.Edges))
	for i, row := range sc.Edges {
		if len(row) != 2 && len(row) != 3 {
			return nil, fmt.Errorf("%w: scenario %q edge %d has %d fields", ErrBadEdge, sc.Name, i, len(row))
		}
		e := core.Edge{From: int(row[0]), To: int(row[1])}
		if len(row) == 3 {
			e.Weight = row[2]
		}
		out = append(out, e)
	}

	return out, nil
}

// Graph builds the scenario's graph.
func (sc Scenario) Graph() (*core.Graph, error) {
	edges, err := sc.CoreEdges()
	if err != nil {
		return nil, err
	}
	opts := []core.GraphOption{core.WithDirected(sc.Directed)}
	if sc.Loops {
		opts = append(opts, core.WithLoops())
	}

	return core.NewFromEdges(sc.Vertices, edges, opts...)
}
