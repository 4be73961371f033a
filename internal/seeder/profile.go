package seeder

import (
	"fmt"

	"github.com/Rana718/gatil/internal/schema"
)

// Range is an inclusive [Min, Max] quantity.
type Range struct {
	Min int
	Max int
}

// Profile tunes how much data a run produces.
type Profile struct {
	Name string
	// Counts keys are table names; tables whose size derives from other
	// tables (roles, photos, participants...) are not listed.
	Counts map[string]int

	Participants    Range
	Caretakers      Range
	EventVolunteers Range
	EventCats       Range

	StayChance     float64
	StayExitChance float64
	StayYears      int
}

func SmallProfile() Profile {
	return Profile{
		Name: "small",
		Counts: map[string]int{
			schema.Endereco:      200,
			schema.Pessoa:        100,
			schema.Gato:          50,
			schema.Campanha:      10,
			schema.Evento:        20,
			schema.Voluntario:    30,
			schema.Adotante:      40,
			schema.Veterinario:   8,
			schema.LarTemporario: 15,
			schema.Doacao:        80,
			schema.Contato:       100,
			schema.Gasto:         150,
			schema.Procedimento:  100,
			schema.Adocao:        20,
			schema.Devolucao:     3,
		},
		Participants:    Range{5, 20},
		Caretakers:      Range{1, 3},
		EventVolunteers: Range{1, 5},
		EventCats:       Range{1, 8},
		StayChance:      1.0 / 2,
		StayExitChance:  1.0 / 2,
		StayYears:       1,
	}
}

func LargeProfile() Profile {
	return Profile{
		Name: "large",
		Counts: map[string]int{
			schema.Endereco:      2000,
			schema.Pessoa:        1500,
			schema.Gato:          800,
			schema.Campanha:      50,
			schema.Evento:        120,
			schema.Voluntario:    200,
			schema.Adotante:      400,
			schema.Veterinario:   25,
			schema.LarTemporario: 80,
			schema.Doacao:        1200,
			schema.Contato:       2500,
			schema.Gasto:         2000,
			schema.Procedimento:  1500,
			schema.Adocao:        300,
			schema.Devolucao:     25,
		},
		Participants:    Range{15, 80},
		Caretakers:      Range{2, 6},
		EventVolunteers: Range{3, 15},
		EventCats:       Range{5, 25},
		StayChance:      2.0 / 3,
		StayExitChance:  2.0 / 3,
		StayYears:       2,
	}
}

// ProfileByName resolves "small" or "large".
func ProfileByName(name string) (Profile, error) {
	switch name {
	case "small":
		return SmallProfile(), nil
	case "large", "":
		return LargeProfile(), nil
	default:
		return Profile{}, fmt.Errorf("unknown seed profile %q (want small or large)", name)
	}
}

// WithCounts returns a copy of p where overrides replace the table counts.
// Only tables the profile sizes directly can be overridden.
func (p Profile) WithCounts(overrides map[string]int) (Profile, error) {
	counts := make(map[string]int, len(p.Counts))
	for table, n := range p.Counts {
		counts[table] = n
	}
	for table, n := range overrides {
		if _, ok := counts[table]; !ok {
			return Profile{}, fmt.Errorf("table %q has no configurable count", table)
		}
		if n < 0 {
			return Profile{}, fmt.Errorf("count for %s cannot be negative: %d", table, n)
		}
		counts[table] = n
	}
	p.Counts = counts
	return p, nil
}

func (p Profile) Count(table string) int {
	return p.Counts[table]
}
