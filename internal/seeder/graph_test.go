package seeder

import (
	"errors"
	"slices"
	"testing"
)

func stepNames(plan []Step) []string {
	names := make([]string, len(plan))
	for i, step := range plan {
		names[i] = step.Name
	}
	return names
}

func TestOrderPlanKeepsDefaultPlan(t *testing.T) {
	plan := DefaultPlan()
	ordered, err := OrderPlan(plan)
	if err != nil {
		t.Fatalf("OrderPlan(DefaultPlan()) error = %v", err)
	}
	if !slices.Equal(stepNames(ordered), stepNames(plan)) {
		t.Errorf("OrderPlan() = %v, want %v", stepNames(ordered), stepNames(plan))
	}
}

func TestOrderPlanMovesProducersFirst(t *testing.T) {
	plan := []Step{
		{Name: "cats", Reads: []string{ResAddresses}, Writes: []string{ResCats}},
		{Name: "people", Reads: []string{ResAddresses}},
		{Name: "addresses", Writes: []string{ResAddresses}},
	}

	ordered, err := OrderPlan(plan)
	if err != nil {
		t.Fatalf("OrderPlan() error = %v", err)
	}
	want := []string{"addresses", "cats", "people"}
	if got := stepNames(ordered); !slices.Equal(got, want) {
		t.Errorf("OrderPlan() = %v, want %v", got, want)
	}
}

func TestOrderPlanRejects(t *testing.T) {
	tests := []struct {
		name string
		plan []Step
	}{
		{
			name: "cycle",
			plan: []Step{
				{Name: "cats", Reads: []string{ResAddresses}, Writes: []string{ResCats}},
				{Name: "addresses", Reads: []string{ResCats}, Writes: []string{ResAddresses}},
			},
		},
		{
			name: "missing producer",
			plan: []Step{
				{Name: "cats", Reads: []string{ResAddresses}},
			},
		},
		{
			name: "duplicate name",
			plan: []Step{
				{Name: "addresses", Writes: []string{ResAddresses}},
				{Name: "addresses"},
			},
		},
		{
			name: "two producers",
			plan: []Step{
				{Name: "a", Writes: []string{ResPeople}},
				{Name: "b", Writes: []string{ResPeople}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := OrderPlan(tt.plan); !errors.Is(err, ErrInvalidPlan) {
				t.Errorf("OrderPlan() error = %v, want ErrInvalidPlan", err)
			}
		})
	}
}

func TestDependencyGraphOrder(t *testing.T) {
	g := NewDependencyGraph()
	g.AddStep("returns", []string{"adoptions"})
	g.AddStep("adoptions", []string{"cats", "adopters"})
	g.AddStep("cats", nil)
	g.AddStep("adopters", nil)

	order, err := g.BuildOrder()
	if err != nil {
		t.Fatalf("BuildOrder() error = %v", err)
	}
	want := []string{"cats", "adopters", "adoptions", "returns"}
	if !slices.Equal(order, want) {
		t.Errorf("BuildOrder() = %v, want %v", order, want)
	}
}

func TestDependencyGraphCycle(t *testing.T) {
	g := NewDependencyGraph()
	g.AddStep("a", []string{"b"})
	g.AddStep("b", []string{"a"})

	if _, err := g.BuildOrder(); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("BuildOrder() error = %v, want ErrInvalidPlan", err)
	}
}
