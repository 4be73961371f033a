package seeder

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Rana718/gatil/internal/database"
	"github.com/Rana718/gatil/internal/ident"
	"github.com/Rana718/gatil/internal/schema"
)

// run carries what every step needs for one seeding transaction.
type run struct {
	tx      database.Queryer
	stmts   *Statements
	gen     *DataGenerator
	ids     *ident.Registry
	profile Profile
	state   *State
}

func (r *run) insert(ctx context.Context, table string, args ...any) error {
	if err := r.tx.Exec(ctx, r.stmts.Insert(table), args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	r.state.Inserted[table]++
	return nil
}

func (r *run) insertID(ctx context.Context, table string, args ...any) (int64, error) {
	id, err := r.tx.InsertReturningID(ctx, r.stmts.Insert(table), args...)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}
	r.state.Inserted[table]++
	return id, nil
}

func (r *run) cpf() (string, error) {
	return r.ids.Reserve(ident.NamespaceCPF, func() string { return ident.NewCPF(r.gen.rand) })
}

func seedAddresses(ctx context.Context, r *run) error {
	g := r.gen
	for range r.profile.Count(schema.Endereco) {
		var complement any
		if g.Chance(1.0 / 3) {
			complement = g.Choice(complements)
		}
		id, err := r.insertID(ctx, schema.Endereco,
			g.Postcode(),
			g.Street(),
			strconv.Itoa(g.Between(1, 9999)),
			g.Choice(neighborhoods),
			complement,
			g.City(),
			g.Choice(states),
		)
		if err != nil {
			return err
		}
		r.state.Addresses = append(r.state.Addresses, id)
	}
	return nil
}

func seedPeople(ctx context.Context, r *run) error {
	g := r.gen
	for range r.profile.Count(schema.Pessoa) {
		cpf, err := r.cpf()
		if err != nil {
			return err
		}
		email, err := r.ids.Reserve(ident.NamespaceEmail, g.Email)
		if err != nil {
			return err
		}
		address := pickOptional(g, 1.0/3, r.state.Addresses)
		if err := r.insert(ctx, schema.Pessoa, cpf, g.Name(), g.Phone(), email, address); err != nil {
			return err
		}
		r.state.People = append(r.state.People, cpf)
	}
	return nil
}

func seedCats(ctx context.Context, r *run) error {
	g := r.gen
	for range r.profile.Count(schema.Gato) {
		address, err := pick(g.rand, "addresses", r.state.Addresses)
		if err != nil {
			return err
		}
		id, err := r.insertID(ctx, schema.Gato,
			g.PetName(),
			g.Between(0, 15),
			g.Date(g.Today().AddDate(-2, 0, 0), g.Today()),
			address,
			g.Choice(catColors),
			g.Choice(catBreeds),
			g.Text(200),
			g.Chance(0.5),
		)
		if err != nil {
			return err
		}
		r.state.Cats = append(r.state.Cats, id)
	}
	return nil
}

func seedCampaigns(ctx context.Context, r *run) error {
	g := r.gen
	today := g.Today()
	for i := range r.profile.Count(schema.Campanha) {
		name, err := r.ids.Reserve(ident.NamespaceCampaign, func() string {
			return fmt.Sprintf("Campanha %s %d", g.CatchPhrase(), i+1)
		})
		if err != nil {
			return err
		}
		start := g.Date(today.AddDate(-1, 0, 0), today)
		end := g.Date(start, today.AddDate(0, 6, 0))
		winner := pickOptional(g, 0.5, r.state.People)

		id, err := r.insertID(ctx, schema.Campanha, name, start, end, g.Text(100), winner)
		if err != nil {
			return err
		}
		r.state.Campaigns = append(r.state.Campaigns, id)
	}
	return nil
}

func seedEvents(ctx context.Context, r *run) error {
	g := r.gen
	today := g.Today()
	for range r.profile.Count(schema.Evento) {
		address, err := pick(g.rand, "addresses", r.state.Addresses)
		if err != nil {
			return err
		}
		name, err := r.ids.Reserve(ident.NamespaceEvent, func() string {
			return "Evento " + g.CatchPhrase()
		})
		if err != nil {
			return err
		}
		start := g.Date(today.AddDate(0, -6, 0), today.AddDate(0, 6, 0))
		var end any
		if g.Chance(0.5) {
			end = g.Date(start, start.AddDate(0, 0, 3))
		}

		id, err := r.insertID(ctx, schema.Evento, name, start, end, address)
		if err != nil {
			return err
		}
		r.state.Events = append(r.state.Events, id)
	}
	return nil
}

// claimPeople takes up to n people no earlier specialization claimed.
func claimPeople(r *run, n int) []string {
	available := r.state.UnclaimedPeople()
	if n > len(available) {
		n = len(available)
	}
	taken := available[:n]
	for _, cpf := range taken {
		r.state.claim(cpf)
	}
	return taken
}

func seedVolunteers(ctx context.Context, r *run) error {
	for _, cpf := range claimPeople(r, r.profile.Count(schema.Voluntario)) {
		if err := r.insert(ctx, schema.Voluntario, cpf); err != nil {
			return err
		}
		r.state.Volunteers = append(r.state.Volunteers, cpf)
	}
	return nil
}

func seedAdopters(ctx context.Context, r *run) error {
	for _, cpf := range claimPeople(r, r.profile.Count(schema.Adotante)) {
		if err := r.insert(ctx, schema.Adotante, cpf, r.gen.Chance(0.5)); err != nil {
			return err
		}
		r.state.Adopters = append(r.state.Adopters, cpf)
	}
	return nil
}

func seedVeterinarians(ctx context.Context, r *run) error {
	g := r.gen
	for _, cpf := range claimPeople(r, r.profile.Count(schema.Veterinario)) {
		crmv, err := r.ids.Reserve(ident.NamespaceCRMV, func() string {
			return ident.NewCRMV(g.rand, ident.DefaultJurisdiction)
		})
		if err != nil {
			return err
		}
		clinic, err := r.ids.Reserve(ident.NamespaceClinic, func() string {
			return "Clínica " + g.Company()
		})
		if err != nil {
			return err
		}
		if err := r.insert(ctx, schema.Veterinario, cpf, crmv, g.Choice(specialties), clinic); err != nil {
			return err
		}
		r.state.Veterinarians = append(r.state.Veterinarians, cpf)
	}
	return nil
}

func seedHomes(ctx context.Context, r *run) error {
	free := r.state.FreeAddresses()
	n := r.profile.Count(schema.LarTemporario)
	if n > len(free) {
		n = len(free)
	}
	for _, address := range free[:n] {
		id, err := r.insertID(ctx, schema.LarTemporario, address, r.gen.Between(5, 30), nil)
		if err != nil {
			return err
		}
		r.state.useHomeAddress(address)
		r.state.Homes = append(r.state.Homes, id)
	}
	return nil
}

func seedRoles(ctx context.Context, r *run) error {
	g := r.gen
	for _, cpf := range r.state.Volunteers {
		for _, role := range sample(g.rand, roles, g.Between(1, 3)) {
			if err := r.insert(ctx, schema.Funcao, cpf, role); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedDonations(ctx context.Context, r *run) error {
	g := r.gen
	today := g.Today()
	for range r.profile.Count(schema.Doacao) {
		donor, err := pick(g.rand, "people", r.state.People)
		if err != nil {
			return err
		}
		err = r.insert(ctx, schema.Doacao,
			g.Date(today.AddDate(-1, 0, 0), today),
			g.Money(10, 500),
			g.Choice(payments),
			donor,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedParticipants(ctx context.Context, r *run) error {
	g := r.gen
	span := r.profile.Participants
	for _, campaign := range r.state.Campaigns {
		for _, cpf := range sample(g.rand, r.state.People, g.Between(span.Min, span.Max)) {
			if err := r.insert(ctx, schema.Participantes, cpf, campaign); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedContacts(ctx context.Context, r *run) error {
	g := r.gen
	for range r.profile.Count(schema.Contato) {
		cpf, err := pick(g.rand, "people", r.state.People)
		if err != nil {
			return err
		}
		at := g.DateTime(g.Now().AddDate(-1, 0, 0), g.Now())
		if err := r.insert(ctx, schema.Contato, cpf, at, g.Choice(subjects)); err != nil {
			return err
		}
	}
	return nil
}

func seedCaretakers(ctx context.Context, r *run) error {
	g := r.gen
	span := r.profile.Caretakers
	for _, home := range r.state.Homes {
		for _, cpf := range sample(g.rand, r.state.Volunteers, g.Between(span.Min, span.Max)) {
			if err := r.insert(ctx, schema.CuidaLar, home, cpf); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedEventVolunteers(ctx context.Context, r *run) error {
	g := r.gen
	span := r.profile.EventVolunteers
	for _, event := range r.state.Events {
		for _, cpf := range sample(g.rand, r.state.Volunteers, g.Between(span.Min, span.Max)) {
			if err := r.insert(ctx, schema.VoluntariosEvento, event, cpf); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedEventCats(ctx context.Context, r *run) error {
	g := r.gen
	span := r.profile.EventCats
	for _, event := range r.state.Events {
		for _, cat := range sample(g.rand, r.state.Cats, g.Between(span.Min, span.Max)) {
			if err := r.insert(ctx, schema.GatosEvento, event, cat); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedCatPhotos(ctx context.Context, r *run) error {
	for _, cat := range r.state.Cats {
		id := fmt.Sprintf("gato_%d", cat)
		photos := r.gen.Between(1, 4)
		for n := 1; n <= photos; n++ {
			if err := r.insert(ctx, schema.FotosGato, cat, PhotoURL("gatos", id, n)); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedStays(ctx context.Context, r *run) error {
	g := r.gen
	today := g.Today()
	for _, cat := range r.state.Cats {
		if !g.Chance(r.profile.StayChance) {
			continue
		}
		home, err := pick(g.rand, "temporary homes", r.state.Homes)
		if err != nil {
			return err
		}
		entry := g.Date(today.AddDate(-r.profile.StayYears, 0, 0), today)
		var exit any
		if g.Chance(r.profile.StayExitChance) {
			exit = g.Date(entry, today)
		}
		if err := r.insert(ctx, schema.Hospedagem, home, cat, entry, exit); err != nil {
			return err
		}
	}
	return nil
}

// seedExpenses charges each expense to exactly one of a cat or a home.
func seedExpenses(ctx context.Context, r *run) error {
	g := r.gen
	today := g.Today()
	for range r.profile.Count(schema.Gasto) {
		var home, cat any
		if g.Chance(0.7) {
			id, err := pick(g.rand, "cats", r.state.Cats)
			if err != nil {
				return err
			}
			cat = id
		} else {
			id, err := pick(g.rand, "temporary homes", r.state.Homes)
			if err != nil {
				return err
			}
			home = id
		}
		err := r.insert(ctx, schema.Gasto,
			g.Date(today.AddDate(-1, 0, 0), today),
			g.Money(10, 300),
			g.Text(100),
			g.Choice(expenseTypes),
			home,
			cat,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedProcedures(ctx context.Context, r *run) error {
	g := r.gen
	for range r.profile.Count(schema.Procedimento) {
		cat, err := pick(g.rand, "cats", r.state.Cats)
		if err != nil {
			return err
		}
		vet, err := pick(g.rand, "veterinarians", r.state.Veterinarians)
		if err != nil {
			return err
		}
		err = r.insert(ctx, schema.Procedimento,
			cat,
			vet,
			g.DateTime(g.Now().AddDate(-1, 0, 0), g.Now()),
			g.Choice(procedureTypes),
			g.Money(50, 800),
			g.Text(200),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPreferences(ctx context.Context, r *run) error {
	g := r.gen
	for _, cpf := range r.state.Adopters {
		if !g.Chance(0.5) {
			continue
		}
		err := r.insert(ctx, schema.Preferencia,
			cpf,
			g.Choice(preferredAges),
			g.Choice(preferredColor),
			g.Choice(preferredBreed),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedScreenings(ctx context.Context, r *run) error {
	g := r.gen
	today := g.Today()
	for _, cpf := range r.state.Adopters {
		if !g.Chance(1.0 / 3) {
			continue
		}
		reviewer, err := pick(g.rand, "volunteers", r.state.Volunteers)
		if err != nil {
			return err
		}
		day := g.Date(today.AddDate(0, -6, 0), today)
		if err := r.insert(ctx, schema.Triagem, cpf, day, reviewer, g.Choice(results)); err != nil {
			return err
		}
	}
	return nil
}

type screening struct {
	adopter string
	date    time.Time
}

// seedScreeningPhotos reads the screenings back so the composite key is the
// one the database stored.
func seedScreeningPhotos(ctx context.Context, r *run) error {
	var rows []screening
	err := r.tx.Query(ctx, r.stmts.SelectScreenings, nil, func(row database.Row) error {
		var s screening
		if err := row.Scan(&s.adopter, &s.date); err != nil {
			return err
		}
		rows = append(rows, s)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read screenings: %w", err)
	}

	for _, s := range rows {
		id := s.adopter + "_" + s.date.Format(time.DateOnly)
		photos := r.gen.Between(1, 3)
		for n := 1; n <= photos; n++ {
			if err := r.insert(ctx, schema.FotosTriagem, s.adopter, s.date, PhotoURL("triagens", id, n)); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedAdoptions(ctx context.Context, r *run) error {
	g := r.gen
	today := g.Today()
	n := min(r.profile.Count(schema.Adocao), len(r.state.Cats), len(r.state.Adopters))
	for _, cat := range shuffled(g.rand, r.state.Cats)[:n] {
		adopter, err := pick(g.rand, "adopters", r.state.Adopters)
		if err != nil {
			return err
		}
		day := g.Date(today.AddDate(0, -6, 0), today)
		if err := r.insert(ctx, schema.Adocao, cat, adopter, day, g.Choice(adoptionMotive)); err != nil {
			return err
		}
	}
	return nil
}

type adoption struct {
	cat     int64
	adopter string
	date    time.Time
}

func seedReturns(ctx context.Context, r *run) error {
	limit := r.profile.Count(schema.Devolucao)
	if limit == 0 {
		return nil
	}

	var rows []adoption
	err := r.tx.Query(ctx, r.stmts.SelectAdoptions, []any{limit}, func(row database.Row) error {
		var a adoption
		if err := row.Scan(&a.cat, &a.adopter, &a.date); err != nil {
			return err
		}
		rows = append(rows, a)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read adoptions: %w", err)
	}

	g := r.gen
	for _, a := range rows {
		day := g.Date(a.date, g.Today())
		if err := r.insert(ctx, schema.Devolucao, a.cat, a.adopter, day, g.Choice(returnMotive)); err != nil {
			return err
		}
	}
	return nil
}

// assignResponsibles makes one caretaker of each home its responsible
// volunteer. Homes without caretakers keep a NULL responsible.
func assignResponsibles(ctx context.Context, r *run) error {
	for _, home := range r.state.Homes {
		var cpf string
		err := r.tx.Query(ctx, r.stmts.SelectCaretaker, []any{home}, func(row database.Row) error {
			return row.Scan(&cpf)
		})
		if err != nil {
			return fmt.Errorf("read caretakers of home %d: %w", home, err)
		}
		if cpf == "" {
			continue
		}
		if err := r.tx.Exec(ctx, r.stmts.UpdateResponsible, cpf, home); err != nil {
			return fmt.Errorf("set responsible of home %d: %w", home, err)
		}
		r.state.Updated[schema.LarTemporario]++
	}
	return nil
}
