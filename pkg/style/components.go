package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/tint/pkg/errors"
)

// OutputComponent is one element of the --style list
type OutputComponent int

const (
	Changes OutputComponent = iota
	GridComponent
	HeaderComponent
	Numbers
	SnipComponent
	Full
	Plain
)

var componentNames = map[OutputComponent]string{
	Changes:         "changes",
	GridComponent:   "grid",
	HeaderComponent: "header",
	Numbers:         "numbers",
	SnipComponent:   "snip",
	Full:            "full",
	Plain:           "plain",
}

// String returns the --style spelling of the component
func (c OutputComponent) String() string {
	if name, ok := componentNames[c]; ok {
		return name
	}
	return fmt.Sprintf("OutputComponent(%d)", int(c))
}

// ParseOutputComponent parses a single --style element
func ParseOutputComponent(s string) (OutputComponent, error) {
	name := strings.TrimSpace(strings.ToLower(s))
	for c, n := range componentNames {
		if n == name {
			return c, nil
		}
	}
	return 0, errors.Newf(errors.ErrArgument, "unknown style '%s'", s)
}

// components returns the decorations a component switches on
func (c OutputComponent) components() []OutputComponent {
	switch c {
	case Full:
		return []OutputComponent{Changes, GridComponent, HeaderComponent, Numbers, SnipComponent}
	case Plain:
		return nil
	default:
		return []OutputComponent{c}
	}
}

// OutputComponents is the set of decorations selected for a run
type OutputComponents map[OutputComponent]struct{}

// NewOutputComponents builds a set from the given components
func NewOutputComponents(cs ...OutputComponent) OutputComponents {
	set := make(OutputComponents, len(cs))
	for _, c := range cs {
		set[c] = struct{}{}
	}
	return set
}

// ParseOutputComponents parses a comma-separated --style list
func ParseOutputComponents(list string) (OutputComponents, error) {
	set := OutputComponents{}
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseOutputComponent(part)
		if err != nil {
			return nil, err
		}
		set[c] = struct{}{}
	}
	if len(set) == 0 {
		return nil, errors.New(errors.ErrArgument, "empty style list")
	}
	return set, nil
}

func (o OutputComponents) has(want OutputComponent) bool {
	for c := range o {
		for _, sub := range c.components() {
			if sub == want {
				return true
			}
		}
	}
	return false
}

func (o OutputComponents) Changes() bool { return o.has(Changes) }
func (o OutputComponents) Grid() bool    { return o.has(GridComponent) }
func (o OutputComponents) Header() bool  { return o.has(HeaderComponent) }
func (o OutputComponents) Numbers() bool { return o.has(Numbers) }
func (o OutputComponents) Snip() bool    { return o.has(SnipComponent) }

// Plain reports whether no decoration at all is active
func (o OutputComponents) Plain() bool {
	return !o.Changes() && !o.Grid() && !o.Header() && !o.Numbers() && !o.Snip()
}

// Clone returns an independent copy of the set
func (o OutputComponents) Clone() OutputComponents {
	out := make(OutputComponents, len(o))
	for c := range o {
		out[c] = struct{}{}
	}
	return out
}

// String renders the set in --style syntax, sorted for stable output
func (o OutputComponents) String() string {
	names := make([]string, 0, len(o))
	for c := range o {
		names = append(names, c.String())
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
