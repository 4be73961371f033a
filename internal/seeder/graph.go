package seeder

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan marks a plan whose steps cannot be put in any runnable order.
var ErrInvalidPlan = errors.New("invalid seed plan")

type node struct {
	name         string
	dependencies []string
}

// DependencyGraph links each step to the steps producing what it reads.
type DependencyGraph struct {
	nodes map[string]*node
	names []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes: make(map[string]*node),
	}
}

func (g *DependencyGraph) AddStep(name string, dependencies []string) {
	if _, exists := g.nodes[name]; !exists {
		g.names = append(g.names, name)
	}
	g.nodes[name] = &node{name: name, dependencies: dependencies}
}

// BuildOrder returns the steps dependencies first, keeping insertion order
// between unrelated steps.
func (g *DependencyGraph) BuildOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("%w: circular dependency detected involving step %s", ErrInvalidPlan, name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		if n := g.nodes[name]; n != nil {
			for _, dep := range n.dependencies {
				if dep == name {
					continue
				}
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// OrderPlan arranges plan so every step runs after the steps writing what it
// reads. A step is only moved to pull its producers ahead of it, so an
// already ordered plan comes back unchanged.
func OrderPlan(plan []Step) ([]Step, error) {
	byName := make(map[string]Step, len(plan))
	producer := make(map[string]string)
	for _, step := range plan {
		if _, dup := byName[step.Name]; dup {
			return nil, fmt.Errorf("%w: step %s appears twice", ErrInvalidPlan, step.Name)
		}
		byName[step.Name] = step
		for _, res := range step.Writes {
			if other, dup := producer[res]; dup {
				return nil, fmt.Errorf("%w: %s is written by both %s and %s", ErrInvalidPlan, res, other, step.Name)
			}
			producer[res] = step.Name
		}
	}

	graph := NewDependencyGraph()
	for _, step := range plan {
		var deps []string
		for _, res := range step.Reads {
			from, ok := producer[res]
			if !ok {
				return nil, fmt.Errorf("%w: step %s reads %s but no step writes it", ErrInvalidPlan, step.Name, res)
			}
			deps = append(deps, from)
		}
		graph.AddStep(step.Name, deps)
	}

	names, err := graph.BuildOrder()
	if err != nil {
		return nil, err
	}
	ordered := make([]Step, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, byName[name])
	}
	return ordered, nil
}
