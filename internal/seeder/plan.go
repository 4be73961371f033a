package seeder

import (
	"context"

	"github.com/Rana718/gatil/internal/schema"
)

// Step is one unit of the seeding plan. Reads and Writes name the resources
// it depends on and produces; OrderPlan sorts steps by them before a run starts.
type Step struct {
	Name   string
	Label  string
	Table  string
	Reads  []string
	Writes []string
	Run    func(ctx context.Context, r *run) error
}

// DefaultPlan is the full shelter population, parents before children.
func DefaultPlan() []Step {
	return []Step{
		{Name: "addresses", Label: "Addresses", Table: schema.Endereco,
			Writes: []string{ResAddresses}, Run: seedAddresses},
		{Name: "people", Label: "People", Table: schema.Pessoa,
			Reads: []string{ResAddresses}, Writes: []string{ResPeople}, Run: seedPeople},
		{Name: "cats", Label: "Cats", Table: schema.Gato,
			Reads: []string{ResAddresses}, Writes: []string{ResCats}, Run: seedCats},
		{Name: "campaigns", Label: "Campaigns", Table: schema.Campanha,
			Reads: []string{ResPeople}, Writes: []string{ResCampaigns}, Run: seedCampaigns},
		{Name: "events", Label: "Events", Table: schema.Evento,
			Reads: []string{ResAddresses}, Writes: []string{ResEvents}, Run: seedEvents},
		{Name: "volunteers", Label: "Volunteers", Table: schema.Voluntario,
			Reads: []string{ResPeople}, Writes: []string{ResVolunteers}, Run: seedVolunteers},
		{Name: "adopters", Label: "Adopters", Table: schema.Adotante,
			Reads: []string{ResPeople, ResVolunteers}, Writes: []string{ResAdopters}, Run: seedAdopters},
		{Name: "veterinarians", Label: "Veterinarians", Table: schema.Veterinario,
			Reads: []string{ResPeople, ResVolunteers, ResAdopters}, Writes: []string{ResVeterinarians}, Run: seedVeterinarians},
		{Name: "homes", Label: "Temporary homes", Table: schema.LarTemporario,
			Reads: []string{ResAddresses, ResVolunteers}, Writes: []string{ResHomes}, Run: seedHomes},
		{Name: "roles", Label: "Volunteer roles", Table: schema.Funcao,
			Reads: []string{ResVolunteers}, Run: seedRoles},
		{Name: "donations", Label: "Donations", Table: schema.Doacao,
			Reads: []string{ResPeople}, Run: seedDonations},
		{Name: "participants", Label: "Campaign participants", Table: schema.Participantes,
			Reads: []string{ResPeople, ResCampaigns}, Run: seedParticipants},
		{Name: "contacts", Label: "Contacts", Table: schema.Contato,
			Reads: []string{ResPeople}, Run: seedContacts},
		{Name: "caretakers", Label: "Home caretakers", Table: schema.CuidaLar,
			Reads: []string{ResHomes, ResVolunteers}, Writes: []string{ResCaretakers}, Run: seedCaretakers},
		{Name: "event-volunteers", Label: "Event volunteers", Table: schema.VoluntariosEvento,
			Reads: []string{ResEvents, ResVolunteers}, Run: seedEventVolunteers},
		{Name: "event-cats", Label: "Event cats", Table: schema.GatosEvento,
			Reads: []string{ResEvents, ResCats}, Run: seedEventCats},
		{Name: "cat-photos", Label: "Cat photos", Table: schema.FotosGato,
			Reads: []string{ResCats}, Run: seedCatPhotos},
		{Name: "stays", Label: "Stays", Table: schema.Hospedagem,
			Reads: []string{ResCats, ResHomes}, Run: seedStays},
		{Name: "expenses", Label: "Expenses", Table: schema.Gasto,
			Reads: []string{ResCats, ResHomes}, Run: seedExpenses},
		{Name: "procedures", Label: "Procedures", Table: schema.Procedimento,
			Reads: []string{ResCats, ResVeterinarians}, Run: seedProcedures},
		{Name: "preferences", Label: "Preferences", Table: schema.Preferencia,
			Reads: []string{ResAdopters}, Run: seedPreferences},
		{Name: "screenings", Label: "Screenings", Table: schema.Triagem,
			Reads: []string{ResAdopters, ResVolunteers}, Writes: []string{ResScreenings}, Run: seedScreenings},
		{Name: "screening-photos", Label: "Screening photos", Table: schema.FotosTriagem,
			Reads: []string{ResScreenings}, Run: seedScreeningPhotos},
		{Name: "adoptions", Label: "Adoptions", Table: schema.Adocao,
			Reads: []string{ResCats, ResAdopters}, Writes: []string{ResAdoptions}, Run: seedAdoptions},
		{Name: "returns", Label: "Returns", Table: schema.Devolucao,
			Reads: []string{ResAdoptions}, Run: seedReturns},
		{Name: "responsible", Label: "Home responsibles", Table: schema.LarTemporario,
			Reads: []string{ResHomes, ResCaretakers}, Writes: []string{ResResponsible}, Run: assignResponsibles},
	}
}
