package spec

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// SubjectName is the helper name under which the subject is stored.
const SubjectName = "subject"

// Producer computes a helper value. super evaluates the next outer definition
// of the same helper.
type Producer func(s *Scope, super Super) any

// Super evaluates the next outer definition of the helper being produced.
type Super func() any

// Body is the code of an example.
type Body func(s *Scope)

// Node is an item of a group: either a *Group or an *Example.
type Node interface {
	node()
}

// Group is a declared example group. It is read-only once its declaring
// block has returned.
type Group struct {
	description string
	parent      *Group
	items       []Node
	helpers     map[string]Producer
	order       []string
	target      *Target
	sealed      bool
}

func (*Group) node() {}

// Description returns the group's own description.
func (g *Group) Description() string { return g.description }

// Parent returns the enclosing group, or nil for a root.
func (g *Group) Parent() *Group { return g.parent }

// Items returns child groups and examples in declared order.
func (g *Group) Items() []Node {
	items := make([]Node, len(g.items))
	copy(items, g.items)
	return items
}

// Children returns the nested groups in declared order.
func (g *Group) Children() []*Group {
	var children []*Group
	for _, item := range g.items {
		if child, ok := item.(*Group); ok {
			children = append(children, child)
		}
	}
	return children
}

// Examples returns the group's own examples in declared order.
func (g *Group) Examples() []*Example {
	var examples []*Example
	for _, item := range g.items {
		if ex, ok := item.(*Example); ok {
			examples = append(examples, ex)
		}
	}
	return examples
}

// Helpers returns the helper names declared at this group in declaration order.
func (g *Group) Helpers() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// Declares reports whether the group itself declares the named helper.
func (g *Group) Declares(name string) bool {
	_, ok := g.helpers[name]
	return ok
}

// Target returns the described target in effect for the group, inherited
// from the root.
func (g *Group) Target() (Target, bool) {
	for n := g; n != nil; n = n.parent {
		if n.target != nil {
			return *n.target, true
		}
	}
	return Target{}, false
}

// FullDescription joins the descriptions from the root down to g.
func (g *Group) FullDescription() string {
	var parts []string
	for _, n := range g.ancestry() {
		if n.description != "" {
			parts = append(parts, n.description)
		}
	}
	return strings.Join(parts, " ")
}

// CountExamples returns the number of examples in g and all its descendants.
func (g *Group) CountExamples() int {
	total := 0
	for _, item := range g.items {
		switch n := item.(type) {
		case *Group:
			total += n.CountExamples()
		case *Example:
			total++
		}
	}
	return total
}

// ancestry returns the chain root..g.
func (g *Group) ancestry() []*Group {
	var chain []*Group
	for n := g; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Example is a declared example.
type Example struct {
	description string
	body        Body
	message     string
	group       *Group
}

func (*Example) node() {}

// Description returns the example's description, which may be empty.
func (e *Example) Description() string { return e.description }

// Group returns the owning group.
func (e *Example) Group() *Group { return e.group }

// Pending reports whether the example has no body.
func (e *Example) Pending() bool { return e.body == nil }

// PendingMessage returns the message reported for a pending example.
func (e *Example) PendingMessage() string { return e.message }

// FullDescription joins the group path and the example description.
func (e *Example) FullDescription() string {
	desc := e.group.FullDescription()
	if e.description == "" {
		return desc
	}
	if desc == "" {
		return e.description
	}
	return desc + " " + e.description
}

// G declares the contents of one group. It is only valid while the block it
// was passed to is running.
type G struct {
	group *Group
}

// Describe declares a root group describing desc. A Target sets the described
// target for the whole tree.
func Describe(desc any, block func(g *G)) *Group {
	g := &Group{helpers: make(map[string]Producer)}
	if t, ok := desc.(Target); ok {
		g.target = &t
	}
	g.description = describe(desc)
	declare(g, block)
	return g
}

// Context declares a root group for a scenario.
func Context(description string, block func(g *G)) *Group {
	return Describe(description, block)
}

// Describe declares a nested group for a unit under test.
func (b *G) Describe(desc any, block func(g *G)) {
	b.checkOpen()
	child := &Group{
		description: describe(desc),
		parent:      b.group,
		helpers:     make(map[string]Producer),
	}
	b.group.items = append(b.group.items, child)
	declare(child, block)
}

// Context declares a nested group for a scenario.
func (b *G) Context(description string, block func(g *G)) {
	b.Describe(description, block)
}

// Let declares the helper name at this group, replacing any earlier
// declaration of name at the same group.
func (b *G) Let(name string, producer Producer) {
	b.checkOpen()
	if producer == nil {
		panic(fmt.Sprintf("spec: nil producer for helper %q", name))
	}
	if _, ok := b.group.helpers[name]; !ok {
		b.group.order = append(b.group.order, name)
	}
	b.group.helpers[name] = producer
}

// Subject declares the subject helper at this group.
func (b *G) Subject(producer Producer) {
	b.Let(SubjectName, producer)
}

// It declares an example. A nil body declares a pending example.
func (b *G) It(description string, body Body) {
	b.checkOpen()
	ex := &Example{description: description, body: body, group: b.group}
	if body == nil {
		ex.message = description
		if ex.message == "" {
			ex.message = "not yet implemented"
		}
	}
	b.group.items = append(b.group.items, ex)
}

// Pending declares a pending example reporting message.
func (b *G) Pending(message string) {
	b.checkOpen()
	b.group.items = append(b.group.items, &Example{
		description: message,
		message:     message,
		group:       b.group,
	})
}

func (b *G) checkOpen() {
	if b.group.sealed {
		panic(ErrSealed)
	}
}

func declare(g *Group, block func(g *G)) {
	if block != nil {
		block(&G{group: g})
	}
	g.sealed = true
}

func describe(desc any) string {
	switch d := desc.(type) {
	case string:
		return d
	case Target:
		return d.Name()
	case fmt.Stringer:
		return d.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Registry keeps root groups in registration order.
type Registry struct {
	mu     sync.Mutex
	groups []*Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds root groups to the registry.
func (r *Registry) Register(groups ...*Group) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range groups {
		if g == nil {
			continue
		}
		if g.parent != nil {
			panic(fmt.Sprintf("spec: %q is not a root group", g.FullDescription()))
		}
		r.groups = append(r.groups, g)
	}
}

// Groups returns the registered root groups in registration order.
func (r *Registry) Groups() []*Group {
	r.mu.Lock()
	defer r.mu.Unlock()
	groups := make([]*Group, len(r.groups))
	copy(groups, r.groups)
	return groups
}

// Names returns the sorted descriptions of the registered root groups.
func (r *Registry) Names() []string {
	var names []string
	for _, g := range r.Groups() {
		names = append(names, g.Description())
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Register adds root groups to the default registry.
func Register(groups ...*Group) {
	defaultRegistry.Register(groups...)
}

// Registered returns the root groups of the default registry.
func Registered() []*Group {
	return defaultRegistry.Groups()
}

// DefaultRegistry returns the registry used by Register.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
