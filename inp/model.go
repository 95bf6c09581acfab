// Copyright 2025 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input model for frame analyses: nodes, members,
// materials, sections, loads and load combinations, either built
// programmatically or read from a JSON file
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// tolerance below which a length or property is considered zero
const ϵp = 1e-9

// ModelError indicates invalid input data: references to unknown entities,
// zero-length members, or non-positive material/section properties
type ModelError struct {
	Msg string
}

// Error returns the error message
func (o *ModelError) Error() string { return o.Msg }

// modelErr returns a new ModelError
func modelErr(msg string, prm ...interface{}) *ModelError {
	return &ModelError{Msg: io.Sf(msg, prm...)}
}

// Node holds input data of one joint
type Node struct {
	Id  int       `json:"id"`  // identifier
	C   []float64 `json:"c"`   // coordinates [ndim]
	Fix []bool    `json:"fix"` // support flags, one per DOF; nil == free
}

// Member holds input data of one prismatic member connecting two nodes.
// Nodes are borrowed by id and may be shared by many members; length and
// orientation are always derived from the current node positions.
type Member struct {
	Id  int       `json:"id"`
	N0  int       `json:"n0"`  // start node id
	N1  int       `json:"n1"`  // end node id
	Mat string    `json:"mat"` // material name
	Sec string    `json:"sec"` // section name
	Onv []float64 `json:"onv"` // 3D only: orientation vector defining the local x-y plane; nil == default
}

// Load holds one applied load. Member load components are given in the
// member-local frame; distributed loads act over the whole span.
//  Type: "nodal" -- concentrated force/moment vector F at node Node
//        "dist"  -- distributed load on member Member: axial Qx plus
//                   linearly-varying transverse QyL->QyR (and QzL->QzR in 3D);
//                   uniform loads have equal end intensities
//        "point" -- concentrated force P on member Member at distance At from end 0
//        "grav"  -- self-weight of member Member under gravity G (resolved by the solver)
type Load struct {
	Cat    string    `json:"cat"`  // category: e.g. "dead", "live", "wind"; used only for combination scaling
	Type   string    `json:"type"` // "nodal", "dist", "point" or "grav"
	Node   int       `json:"node"`
	Member int       `json:"member"`
	F      []float64 `json:"f"`
	Qx     float64   `json:"qx"`
	QyL    float64   `json:"qyl"`
	QyR    float64   `json:"qyr"`
	QzL    float64   `json:"qzl"`
	QzR    float64   `json:"qzr"`
	P      []float64 `json:"p"`
	At     float64   `json:"at"`
	G      float64   `json:"g"`

	// derived
	Off bool `json:"-"` // load disabled during validation (e.g. position out of range)
}

// Combo holds one load combination: a name and scaling factors per load category
type Combo struct {
	Name    string             `json:"name"`
	Factors map[string]float64 `json:"factors"`
}

// Model holds the complete input data of one analysis model
type Model struct {

	// input
	Ndim      int         `json:"ndim"` // 2 or 3
	Title     string      `json:"title"`
	Nodes     []*Node     `json:"nodes"`
	Materials []*Material `json:"materials"`
	Sections  []*Section  `json:"sections"`
	Members   []*Member   `json:"members"`
	Loads     []*Load     `json:"loads"`
	Combos    []*Combo    `json:"combos"`

	// derived
	Nid2node map[int]*Node        `json:"-"`
	Mid2mbr  map[int]*Member      `json:"-"`
	Matmap   map[string]*Material `json:"-"`
	Secmap   map[string]*Section  `json:"-"`
	Combomap map[string]*Combo    `json:"-"`
	Warnings []string             `json:"-"` // non-fatal configuration warnings
	checked  bool
}

// NewModel returns a new empty model for 2D or 3D analyses
func NewModel(ndim int) *Model {
	if ndim != 2 && ndim != 3 {
		chk.Panic("ndim must be 2 or 3. ndim=%d is invalid", ndim)
	}
	return &Model{Ndim: ndim}
}

// Ndof returns the number of degrees-of-freedom per node: 3 in 2D, 6 in 3D
func (o *Model) Ndof() int {
	if o.Ndim == 3 {
		return 6
	}
	return 3
}

// AddNode adds a node. fix holds one support flag per DOF; omit for a free node.
func (o *Model) AddNode(id int, c []float64, fix ...bool) *Node {
	n := &Node{Id: id, C: c, Fix: fix}
	o.Nodes = append(o.Nodes, n)
	o.checked = false
	return n
}

// AddMaterial adds a material given by its parameters; e.g. E, G, rho
func (o *Model) AddMaterial(name string, prms dbf.Params) *Material {
	m := &Material{Name: name, Prms: prms}
	o.Materials = append(o.Materials, m)
	o.checked = false
	return m
}

// AddSection adds a cross-section
func (o *Model) AddSection(name string, a, i22, i11, jtt float64) *Section {
	s := &Section{Name: name, A: a, I22: i22, I11: i11, Jtt: jtt}
	o.Sections = append(o.Sections, s)
	o.checked = false
	return s
}

// AddMember adds a member connecting nodes n0 and n1
func (o *Model) AddMember(id, n0, n1 int, mat, sec string) *Member {
	m := &Member{Id: id, N0: n0, N1: n1, Mat: mat, Sec: sec}
	o.Members = append(o.Members, m)
	o.checked = false
	return m
}

// AddNodalLoad adds a concentrated load at a node. f holds one force/moment
// component per DOF in the global frame.
func (o *Model) AddNodalLoad(cat string, node int, f ...float64) *Load {
	l := &Load{Cat: cat, Type: "nodal", Node: node, F: f}
	o.Loads = append(o.Loads, l)
	o.checked = false
	return l
}

// AddMemberUDL adds a uniformly distributed transverse load (local y) on a member
func (o *Model) AddMemberUDL(cat string, member int, qy float64) *Load {
	return o.AddMemberDist(cat, member, 0, qy, qy, 0, 0)
}

// AddMemberDist adds a distributed load with axial intensity qx and
// linearly-varying transverse intensities, all in member-local axes
func (o *Model) AddMemberDist(cat string, member int, qx, qyl, qyr, qzl, qzr float64) *Load {
	l := &Load{Cat: cat, Type: "dist", Member: member, Qx: qx, QyL: qyl, QyR: qyr, QzL: qzl, QzR: qzr}
	o.Loads = append(o.Loads, l)
	o.checked = false
	return l
}

// AddMemberPoint adds a concentrated load on a member at distance at from end 0.
// p holds the force components in member-local axes: {px, py} or {px, py, pz}.
func (o *Model) AddMemberPoint(cat string, member int, at float64, p ...float64) *Load {
	l := &Load{Cat: cat, Type: "point", Member: member, At: at, P: p}
	o.Loads = append(o.Loads, l)
	o.checked = false
	return l
}

// AddSelfWeight adds the self-weight of every member as a distributed load of
// intensity rho*A*g acting along the negative global y axis. The solver
// resolves the global intensity into member-local components.
func (o *Model) AddSelfWeight(cat string, g float64) {
	for _, m := range o.Members {
		o.Loads = append(o.Loads, &Load{Cat: cat, Type: "grav", Member: m.Id, G: g})
	}
	o.checked = false
}

// AddCombo adds a load combination
func (o *Model) AddCombo(name string, factors map[string]float64) *Combo {
	c := &Combo{Name: name, Factors: factors}
	o.Combos = append(o.Combos, c)
	o.checked = false
	return c
}

// Warn records a non-fatal configuration warning
func (o *Model) Warn(msg string, prm ...interface{}) {
	o.Warnings = append(o.Warnings, io.Sf(msg, prm...))
	if io.Verbose {
		io.Pfyel("warning: %s\n", io.Sf(msg, prm...))
	}
}

// Dist returns the distance between the two end nodes of a member
func (o *Model) Dist(m *Member) float64 {
	n0, n1 := o.Nid2node[m.N0], o.Nid2node[m.N1]
	sum := 0.0
	for i := 0; i < o.Ndim; i++ {
		d := n1.C[i] - n0.C[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Check validates the model, builds the lookup maps, derives material
// parameters and collects configuration warnings. It must succeed before the
// model is handed to the solver.
func (o *Model) Check() (err error) {

	// dimensions
	if o.Ndim != 2 && o.Ndim != 3 {
		return modelErr("ndim must be 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	ndof := o.Ndof()

	// nodes
	o.Nid2node = make(map[int]*Node)
	for _, n := range o.Nodes {
		if _, found := o.Nid2node[n.Id]; found {
			return modelErr("duplicate node id %d", n.Id)
		}
		if len(n.C) != o.Ndim {
			return modelErr("node %d: need %d coordinates, got %d", n.Id, o.Ndim, len(n.C))
		}
		if n.Fix != nil && len(n.Fix) != ndof {
			return modelErr("node %d: need %d support flags, got %d", n.Id, ndof, len(n.Fix))
		}
		o.Nid2node[n.Id] = n
	}

	// materials
	o.Matmap = make(map[string]*Material)
	for _, m := range o.Materials {
		if _, found := o.Matmap[m.Name]; found {
			return modelErr("duplicate material %q", m.Name)
		}
		if err = m.Derive(); err != nil {
			return
		}
		if o.Ndim == 3 && m.G < ϵp {
			return modelErr("material %q: G must be positive in 3D", m.Name)
		}
		o.Matmap[m.Name] = m
	}

	// sections
	o.Secmap = make(map[string]*Section)
	for _, s := range o.Sections {
		if _, found := o.Secmap[s.Name]; found {
			return modelErr("duplicate section %q", s.Name)
		}
		if err = s.check(o.Ndim); err != nil {
			return
		}
		o.Secmap[s.Name] = s
	}

	// members
	o.Mid2mbr = make(map[int]*Member)
	for _, m := range o.Members {
		if _, found := o.Mid2mbr[m.Id]; found {
			return modelErr("duplicate member id %d", m.Id)
		}
		for _, nid := range []int{m.N0, m.N1} {
			if _, found := o.Nid2node[nid]; !found {
				return modelErr("member %d references unknown node %d", m.Id, nid)
			}
		}
		if _, found := o.Matmap[m.Mat]; !found {
			return modelErr("member %d references unknown material %q", m.Id, m.Mat)
		}
		if _, found := o.Secmap[m.Sec]; !found {
			return modelErr("member %d references unknown section %q", m.Id, m.Sec)
		}
		o.Mid2mbr[m.Id] = m
		if o.Dist(m) < ϵp {
			return modelErr("member %d has zero length", m.Id)
		}
	}

	// loads
	cats := make(map[string]bool)
	for _, l := range o.Loads {
		cats[l.Cat] = true
		switch l.Type {
		case "nodal":
			n, found := o.Nid2node[l.Node]
			if !found {
				return modelErr("nodal load references unknown node %d", l.Node)
			}
			if len(l.F) != ndof {
				return modelErr("nodal load at node %d: need %d components, got %d", n.Id, ndof, len(l.F))
			}
		case "dist", "grav":
			if _, found := o.Mid2mbr[l.Member]; !found {
				return modelErr("member load references unknown member %d", l.Member)
			}
		case "point":
			m, found := o.Mid2mbr[l.Member]
			if !found {
				return modelErr("member load references unknown member %d", l.Member)
			}
			if len(l.P) != o.Ndim {
				return modelErr("point load on member %d: need %d components, got %d", m.Id, o.Ndim, len(l.P))
			}
			if L := o.Dist(m); l.At < 0 || l.At > L {
				l.Off = true
				o.Warn("point load on member %d at x=%g is outside [0,%g]; load ignored", m.Id, l.At, L)
			}
		default:
			return modelErr("load type %q is invalid", l.Type)
		}
	}

	// combinations
	o.Combomap = make(map[string]*Combo)
	for _, c := range o.Combos {
		if _, found := o.Combomap[c.Name]; found {
			return modelErr("duplicate combination %q", c.Name)
		}
		o.Combomap[c.Name] = c
		for cat := range c.Factors {
			if !cats[cat] {
				o.Warn("combination %q scales category %q but no load carries it", c.Name, cat)
			}
		}
	}

	o.checked = true
	return
}

// Checked tells whether Check has run successfully since the last mutation
func (o *Model) Checked() bool { return o.checked }

// ReadModel reads a model from a JSON file and validates it
func ReadModel(fnamepath string) (o *Model, err error) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read model file:\n%v", err)
	}
	o = new(Model)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fnamepath, err)
	}
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}
