package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourplan/astar"
	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/mission"
	"github.com/katalvlaran/tourplan/reach"
	"github.com/katalvlaran/tourplan/spatial"
)

// MaxFileSize bounds the mission files Load accepts.
const MaxFileSize = 4 << 20

// CoincidentEpsilon is the distance under which two nodes are reported as
// sharing a point.
const CoincidentEpsilon = 1e-6

// Sentinel errors for mission files.
var (
	ErrEmpty       = errors.New("config: mission file is empty")
	ErrTooLarge    = errors.New("config: mission file too large")
	ErrInvalid     = errors.New("config: mission file is invalid")
	ErrUnknownNode = errors.New("config: unknown node")
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// File is the decoded form of a mission file.
type File struct {
	Start             string               `yaml:"start" validate:"required"`
	Finish            string               `yaml:"finish,omitempty"`
	Checkpoints       []string             `yaml:"checkpoints" validate:"dive,required"`
	Resources         []string             `yaml:"resources,omitempty" validate:"dive,required"`
	RequiredResources int                  `yaml:"required_resources,omitempty" validate:"gte=0"`
	BiasWeight        *float64             `yaml:"bias_weight,omitempty" validate:"omitempty,gte=0"`
	Penalty           *float64             `yaml:"penalty,omitempty" validate:"omitempty,gte=0"`
	MaxExpansions     int                  `yaml:"max_expansions,omitempty" validate:"gte=0"`
	Nodes             map[string][]float64 `yaml:"nodes" validate:"required,min=1,dive,keys,required,endkeys,len=2"`
	Edges             map[string][]Edge    `yaml:"edges" validate:"dive,keys,required,endkeys,dive"`
	GuidePaths        map[string][]string  `yaml:"guide_paths,omitempty" validate:"dive,keys,required,endkeys,dive,required"`
}

// Edge is one adjacency entry, written in YAML as [to] or [to, weight].
type Edge struct {
	To     string  `validate:"required"`
	Weight float64 `validate:"gte=0"`
}

// UnmarshalYAML decodes the two-element list form. A missing weight is 1.
func (e *Edge) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) < 1 || len(value.Content) > 2 {
		return fmt.Errorf("line %d: edge must be [to] or [to, weight]", value.Line)
	}
	if err := value.Content[0].Decode(&e.To); err != nil {
		return fmt.Errorf("line %d: edge target: %w", value.Line, err)
	}
	e.Weight = 1
	if len(value.Content) == 2 {
		if err := value.Content[1].Decode(&e.Weight); err != nil {
			return fmt.Errorf("line %d: edge weight: %w", value.Line, err)
		}
	}

	return nil
}

// MarshalYAML writes the list form back.
func (e Edge) MarshalYAML() (interface{}, error) {
	return []interface{}{e.To, e.Weight}, nil
}

// Load reads and parses the mission file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer fh.Close()

	data, err := io.ReadAll(io.LimitReader(fh, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, path, MaxFileSize)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes and validates a mission file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks struct tags and cross references.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	known := f.knownNodes()
	var errs []error
	check := func(where, id string) {
		if !known.Has(id) {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrUnknownNode, where, id))
		}
	}
	check("start", f.Start)
	if f.Finish != "" {
		check("finish", f.Finish)
	}
	for i, id := range f.Checkpoints {
		check(fmt.Sprintf("checkpoints[%d]", i), id)
	}
	for i, id := range f.Resources {
		check(fmt.Sprintf("resources[%d]", i), id)
	}
	for _, from := range sortedKeys(f.GuidePaths) {
		check("guide_paths key", from)
		for i, id := range f.GuidePaths[from] {
			check(fmt.Sprintf("guide_paths[%s][%d]", from, i), id)
		}
	}

	return errors.Join(errs...)
}

// Warnings lists legal but suspicious conditions: nodes without
// coordinates and nodes sharing a point.
func (f *File) Warnings() []string {
	var out []string
	coords := f.Coords()
	if missing := coords.Missing(f.knownNodes().Sorted()); len(missing) > 0 {
		out = append(out, fmt.Sprintf("nodes without coordinates: %s", strings.Join(missing, ", ")))
	}
	for _, group := range spatial.NewIndex(coords).Coincident(coords, CoincidentEpsilon) {
		out = append(out, fmt.Sprintf("nodes share a point: %s", strings.Join(group, ", ")))
	}
	if unreachable := f.unreachable(); len(unreachable) > 0 {
		out = append(out, fmt.Sprintf("checkpoints unreachable from start: %s", strings.Join(unreachable, ", ")))
	}

	return out
}

// unreachable lists checkpoints with no edge path from the start, ignoring
// the visited-node rules of planning. They can only be reached by fallback.
func (f *File) unreachable() []string {
	g, _, _, err := f.Build()
	if err != nil {
		return nil
	}
	res, err := reach.From(g, f.Start)
	if err != nil {
		return nil
	}
	seen := core.NewNodeSet()
	var out []string
	for _, id := range f.Checkpoints {
		if !res.Reached(id) && !seen.Has(id) {
			seen.Add(id)
			out = append(out, id)
		}
	}

	return out
}

// Coords returns the coordinate map.
func (f *File) Coords() core.Coords {
	coords := make(core.Coords, len(f.Nodes))
	for id, xy := range f.Nodes {
		if len(xy) == 2 {
			coords[id] = orb.Point{xy[0], xy[1]}
		}
	}

	return coords
}

// Build returns the graph, coordinates and mission the file describes.
// Edges are added in sorted source order, each list in file order.
func (f *File) Build() (*core.Graph, core.Coords, mission.Mission, error) {
	g := core.NewGraph()
	for _, id := range f.knownNodes().Sorted() {
		if err := g.AddVertex(id); err != nil {
			return nil, nil, mission.Mission{}, fmt.Errorf("config: node %q: %w", id, err)
		}
	}
	for _, from := range sortedKeys(f.Edges) {
		for _, e := range f.Edges[from] {
			if err := g.AddEdge(from, e.To, e.Weight); err != nil {
				return nil, nil, mission.Mission{}, fmt.Errorf("config: edge %s→%s: %w", from, e.To, err)
			}
		}
	}

	m := mission.Mission{
		Start:             f.Start,
		Checkpoints:       append([]string(nil), f.Checkpoints...),
		Resources:         append([]string(nil), f.Resources...),
		RequiredResources: f.RequiredResources,
		Finish:            f.Finish,
	}
	if len(f.GuidePaths) > 0 {
		m.GuidePaths = make(map[string]core.GuidePath, len(f.GuidePaths))
		for from, nodes := range f.GuidePaths {
			m.GuidePaths[from] = core.NewGuidePath(nodes...)
		}
	}

	return g, f.Coords(), m, nil
}

// MissionOptions returns the sequencer options the file sets.
func (f *File) MissionOptions() []mission.Option {
	var opts []mission.Option
	if f.BiasWeight != nil {
		opts = append(opts, mission.WithBiasWeight(*f.BiasWeight))
	}
	if f.Penalty != nil {
		opts = append(opts, mission.WithPenalty(*f.Penalty))
	}
	if f.MaxExpansions > 0 {
		opts = append(opts, mission.WithMaxExpansions(f.MaxExpansions))
	}

	return opts
}

// SearchOptions returns the same tuning for a single astar.Search.
func (f *File) SearchOptions() []astar.Option {
	var opts []astar.Option
	if f.BiasWeight != nil {
		opts = append(opts, astar.WithBiasWeight(*f.BiasWeight))
	}
	if f.Penalty != nil {
		opts = append(opts, astar.WithPenalty(*f.Penalty))
	}
	if f.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(f.MaxExpansions))
	}

	return opts
}

// knownNodes is every node with coordinates or on an edge.
func (f *File) knownNodes() core.NodeSet {
	known := core.NewNodeSet()
	for id := range f.Nodes {
		known.Add(id)
	}
	for from, edges := range f.Edges {
		known.Add(from)
		for _, e := range edges {
			known.Add(e.To)
		}
	}

	return known
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
