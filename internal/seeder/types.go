package seeder

import (
	"time"
)

// Resources a step can read or write. Pool resources are in-memory id lists
// held by State; table resources are rows a later step reads back from the
// database.
const (
	ResAddresses     = "addresses"
	ResPeople        = "people"
	ResCats          = "cats"
	ResCampaigns     = "campaigns"
	ResEvents        = "events"
	ResVolunteers    = "volunteers"
	ResAdopters      = "adopters"
	ResVeterinarians = "veterinarians"
	ResHomes         = "homes"
	ResScreenings    = "table:triagem"
	ResAdoptions     = "table:adocao"
	ResCaretakers    = "table:cuida_lar"
	ResResponsible   = "column:lar_temporario.responsavel_cpf"
)

// State is the cross-step memory of one run: every identifier a later step
// may reuse as a foreign key, plus row counts per table. The run owns it and
// hands it to each step.
type State struct {
	Addresses     []int64
	People        []string
	Cats          []int64
	Campaigns     []int64
	Events        []int64
	Volunteers    []string
	Adopters      []string
	Veterinarians []string
	Homes         []int64
	HomeAddresses []int64

	// Inserted rows per table; Updated rows per table for the final pass.
	Inserted map[string]int
	Updated  map[string]int

	claimed       map[string]struct{}
	homeAddresses map[int64]struct{}
}

func NewState() *State {
	return &State{
		Inserted:      make(map[string]int),
		Updated:       make(map[string]int),
		claimed:       make(map[string]struct{}),
		homeAddresses: make(map[int64]struct{}),
	}
}

// UnclaimedPeople returns, in insertion order, the people not yet taken by a
// specialization (volunteer, adopter, veterinarian).
func (s *State) UnclaimedPeople() []string {
	out := make([]string, 0, len(s.People)-len(s.claimed))
	for _, cpf := range s.People {
		if _, taken := s.claimed[cpf]; !taken {
			out = append(out, cpf)
		}
	}
	return out
}

func (s *State) claim(cpf string) {
	s.claimed[cpf] = struct{}{}
}

// FreeAddresses returns the addresses no temporary home uses yet.
func (s *State) FreeAddresses() []int64 {
	out := make([]int64, 0, len(s.Addresses))
	for _, id := range s.Addresses {
		if _, used := s.homeAddresses[id]; !used {
			out = append(out, id)
		}
	}
	return out
}

func (s *State) useHomeAddress(id int64) {
	s.homeAddresses[id] = struct{}{}
	s.HomeAddresses = append(s.HomeAddresses, id)
}

// TotalInserted sums Inserted over every table.
func (s *State) TotalInserted() int {
	total := 0
	for _, n := range s.Inserted {
		total += n
	}
	return total
}

type StepResult struct {
	Name     string        `yaml:"name"`
	Rows     int           `yaml:"rows"`
	Duration time.Duration `yaml:"duration"`
}

// Summary is what a successful run reports.
type Summary struct {
	Profile  string
	Seed     uint64
	Dialect  string
	Started  time.Time
	Duration time.Duration
	Steps    []StepResult
	State    *State
}
