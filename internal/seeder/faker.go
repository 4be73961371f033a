package seeder

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// DataGenerator produces the column values of the shelter tables. Free-form
// values come from gofakeit; domain vocabularies are fixed lists. Both share
// one seed so a run can be replayed.
type DataGenerator struct {
	rand  *rand.Rand
	faker *gofakeit.Faker
	today time.Time
	now   time.Time
}

// NewDataGenerator seeds both sources with seed, or with a random seed when
// seed is 0. It returns the seed actually used.
func NewDataGenerator(seed uint64) (*DataGenerator, uint64) {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	now := time.Now().UTC()
	return &DataGenerator{
		rand:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		faker: gofakeit.New(seed),
		today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		now:   now.Truncate(time.Second),
	}, seed
}

var (
	states        = []string{"SP", "RJ", "MG", "RS", "PR", "SC", "BA", "GO", "PE", "CE"}
	complements   = []string{"Apto 101", "Bloco A", "Casa 2", "Fundos", "Sobrado", "Apto 201", "Casa dos fundos"}
	neighborhoods = []string{"Centro", "Jardim América", "Vila Mariana", "Boa Vista", "Santa Cecília", "Liberdade", "Bela Vista", "Vila Nova", "São José", "Jardim das Flores"}
	catColors     = []string{"Preto", "Branco", "Cinza", "Laranja", "Malhado", "Siamês", "Rajado"}
	catBreeds     = []string{"SRD", "Persa", "Siamês", "Maine Coon", "British Shorthair", "Ragdoll"}
	specialties   = []string{"Clínica Geral", "Cirurgia", "Dermatologia", "Cardiologia", "Oncologia"}
	roles         = []string{"Resgate", "Cuidador", "Transporte", "Triagem", "Administração", "Captação de Recursos"}
	payments      = []string{"PIX", "CARTAO_CREDITO", "TRANSFERENCIA", "DINHEIRO", "CARTAO_DEBITO"}
	subjects      = []string{
		"Interesse em adoção", "Dúvidas sobre voluntariado", "Relato de animal abandonado",
		"Solicitação de castração", "Doação de ração", "Informações sobre evento",
	}
	expenseTypes   = []string{"ALIMENTACAO", "VETERINARIO", "MEDICAMENTO", "TRANSPORTE", "HIGIENE", "MANUTENCAO"}
	procedureTypes = []string{"CONSULTA", "VACINACAO", "CASTRACAO", "CIRURGIA", "EXAME", "TRATAMENTO"}
	preferredAges  = []string{"Filhote", "Adulto", "Idoso", "Qualquer"}
	preferredColor = []string{"Preto", "Branco", "Cinza", "Laranja", "Qualquer"}
	preferredBreed = []string{"SRD", "Persa", "Siamês", "Qualquer"}
	results        = []string{"APROVADO", "REPROVADO", "PENDENTE"}
	adoptionMotive = []string{"Amor por animais", "Companhia", "Ajudar animal necessitado", "Pedido da família"}
	returnMotive   = []string{"Problemas de saúde do animal", "Mudança de residência", "Alergia", "Problemas comportamentais"}
)

// Between returns an int in [lo, hi].
func (g *DataGenerator) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rand.IntN(hi-lo+1)
}

// Chance returns true with probability p.
func (g *DataGenerator) Chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *DataGenerator) Choice(options []string) string {
	return options[g.rand.IntN(len(options))]
}

func (g *DataGenerator) Postcode() string {
	return g.faker.Numerify("########")
}

func (g *DataGenerator) Street() string {
	return g.faker.StreetName()
}

func (g *DataGenerator) City() string {
	return g.faker.City()
}

func (g *DataGenerator) Name() string {
	return g.faker.Name()
}

func (g *DataGenerator) PetName() string {
	return g.faker.PetName()
}

// Phone returns a 15-character mobile number, e.g. "(11) 91234-5678".
func (g *DataGenerator) Phone() string {
	return g.faker.Numerify("(##) 9####-####")
}

func (g *DataGenerator) Email() string {
	return strings.ToLower(g.faker.Email())
}

func (g *DataGenerator) CatchPhrase() string {
	return g.faker.BuzzWord() + " " + g.faker.BS()
}

func (g *DataGenerator) Company() string {
	return g.faker.Company()
}

// Text returns a capitalized sentence of whole words no longer than maxChars.
func (g *DataGenerator) Text(maxChars int) string {
	var b strings.Builder
	for {
		w := g.faker.Word()
		need := len(w) + 1 // trailing period
		if b.Len() > 0 {
			need++
		}
		if b.Len()+need > maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	s := b.String()
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Date returns a UTC midnight between from and to, both inclusive.
func (g *DataGenerator) Date(from, to time.Time) time.Time {
	from = truncateDay(from)
	to = truncateDay(to)
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, g.rand.IntN(days+1))
}

// DateTime returns an instant between from and to, at second precision.
func (g *DataGenerator) DateTime(from, to time.Time) time.Time {
	span := int64(to.Sub(from) / time.Second)
	if span <= 0 {
		return from.Truncate(time.Second)
	}
	return from.Add(time.Duration(g.rand.Int64N(span+1)) * time.Second).Truncate(time.Second)
}

// Money returns a value in [lo, hi] rounded to cents.
func (g *DataGenerator) Money(lo, hi float64) float64 {
	v := lo + g.rand.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}

func (g *DataGenerator) Today() time.Time { return g.today }

func (g *DataGenerator) Now() time.Time { return g.now }

// PhotoURL builds the placeholder URL stored for photos; n starts at 1.
func PhotoURL(category, entityID string, n int) string {
	return fmt.Sprintf("https://example.com/%s/%s_foto_%d.jpg", category, entityID, n)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
