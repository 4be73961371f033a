package seeder

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/gatil/internal/database"
	"github.com/Rana718/gatil/internal/schema"
)

func TestStatementsPerDialect(t *testing.T) {
	postgres := database.Dialect{Name: "postgresql", Placeholder: squirrel.Dollar, Returning: true}
	mysql := database.Dialect{Name: "mysql", Placeholder: squirrel.Question, Returning: false}

	pg, err := NewStatements(postgres)
	if err != nil {
		t.Fatal(err)
	}
	my, err := NewStatements(mysql)
	if err != nil {
		t.Fatal(err)
	}

	addr := pg.Insert(schema.Endereco)
	if !strings.HasPrefix(addr, "INSERT INTO endereco") || !strings.HasSuffix(addr, "RETURNING id") {
		t.Errorf("postgres endereco insert = %q", addr)
	}
	if !strings.Contains(addr, "$7") || strings.Contains(addr, "?") {
		t.Errorf("postgres endereco insert has wrong placeholders: %q", addr)
	}
	if q := pg.Insert(schema.Pessoa); strings.Contains(q, "RETURNING") {
		t.Errorf("pessoa insert should not return an id: %q", q)
	}
	if q := my.Insert(schema.Endereco); strings.Contains(q, "RETURNING") || !strings.Contains(q, "?") {
		t.Errorf("mysql endereco insert = %q", q)
	}

	if !strings.HasSuffix(pg.SelectAdoptions, "LIMIT $1") {
		t.Errorf("SelectAdoptions = %q", pg.SelectAdoptions)
	}
	if !strings.Contains(pg.SelectCaretaker, "lar_id = $1") || !strings.HasSuffix(pg.SelectCaretaker, "LIMIT 1") {
		t.Errorf("SelectCaretaker = %q", pg.SelectCaretaker)
	}
	if pg.UpdateResponsible != "UPDATE lar_temporario SET responsavel_cpf = $1 WHERE id = $2" {
		t.Errorf("UpdateResponsible = %q", pg.UpdateResponsible)
	}
}

func TestStatementsCoverEveryTable(t *testing.T) {
	s, err := NewStatements(database.Dialect{Name: "sqlite", Placeholder: squirrel.Question, Returning: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, table := range schema.WipeOrder {
		if s.Insert(table) == "" {
			t.Errorf("no insert for %s", table)
		}
	}
}
