package seeder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/gatil/internal/database"
	"github.com/Rana718/gatil/internal/schema"
)

type insertSpec struct {
	table     string
	columns   []string
	returning bool
}

var inserts = []insertSpec{
	{schema.Endereco, []string{"cep", "rua", "numero", "bairro", "complemento", "cidade", "estado"}, true},
	{schema.Pessoa, []string{"cpf", "nome", "telefone", "email", "endereco_id"}, false},
	{schema.Gato, []string{"nome", "idade", "data_resgate", "endereco_resgate_id", "cor", "raca", "condicao_saude", "adotado"}, true},
	{schema.Campanha, []string{"nome", "data_inicio", "data_fim", "premio", "vencedor_cpf"}, true},
	{schema.Evento, []string{"nome", "data_inicio", "data_fim", "endereco_id"}, true},
	{schema.Voluntario, []string{"cpf"}, false},
	{schema.Adotante, []string{"cpf", "procurando_gato"}, false},
	{schema.Veterinario, []string{"cpf", "crmv", "especialidade", "clinica"}, false},
	{schema.LarTemporario, []string{"endereco_id", "capacidade_maxima", "responsavel_cpf"}, true},
	{schema.Funcao, []string{"voluntario_cpf", "funcao"}, false},
	{schema.Doacao, []string{"data", "valor", "forma_pagamento", "pessoa_cpf"}, false},
	{schema.Participantes, []string{"pessoa_cpf", "campanha_id"}, false},
	{schema.Contato, []string{"pessoa_cpf", "data_hora", "assunto"}, false},
	{schema.CuidaLar, []string{"lar_id", "voluntario_cpf"}, false},
	{schema.VoluntariosEvento, []string{"evento_id", "voluntario_cpf"}, false},
	{schema.GatosEvento, []string{"evento_id", "gato_id"}, false},
	{schema.FotosGato, []string{"gato_id", "foto_url"}, false},
	{schema.Hospedagem, []string{"lar_temporario_id", "gato_id", "data_entrada", "data_saida"}, false},
	{schema.Gasto, []string{"data", "valor", "descricao", "tipo", "lar_id", "gato_id"}, false},
	{schema.Procedimento, []string{"gato_id", "veterinario_cpf", "data_hora", "tipo", "custo", "descricao"}, false},
	{schema.Preferencia, []string{"adotante_cpf", "idade_preferida", "cor_preferida", "raca_preferida"}, false},
	{schema.Triagem, []string{"adotante_cpf", "data", "responsavel_cpf", "resultado"}, false},
	{schema.FotosTriagem, []string{"adotante_cpf", "triagem_data", "foto_url"}, false},
	{schema.Adocao, []string{"gato_id", "adotante_cpf", "data", "motivo"}, false},
	{schema.Devolucao, []string{"gato_id", "adotante_cpf", "data", "motivo"}, false},
}

// Statements holds every query of a run, rendered once for one dialect.
type Statements struct {
	insert map[string]string

	SelectScreenings  string
	SelectAdoptions   string
	SelectCaretaker   string
	UpdateResponsible string
}

func NewStatements(d database.Dialect) (*Statements, error) {
	qb := d.Builder()
	s := &Statements{insert: make(map[string]string, len(inserts))}

	for _, ins := range inserts {
		q := qb.Insert(ins.table).
			Columns(ins.columns...).
			Values(make([]any, len(ins.columns))...)
		if ins.returning && d.Returning {
			q = q.Suffix("RETURNING id")
		}
		sql, _, err := q.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build insert for %s: %w", ins.table, err)
		}
		s.insert[ins.table] = sql
	}

	var err error
	if s.SelectScreenings, _, err = qb.Select("adotante_cpf", "data").
		From(schema.Triagem).
		OrderBy("adotante_cpf").
		ToSql(); err != nil {
		return nil, err
	}
	if s.SelectAdoptions, _, err = qb.Select("gato_id", "adotante_cpf", "data").
		From(schema.Adocao).
		OrderBy("id").
		Suffix("LIMIT ?", 0).
		ToSql(); err != nil {
		return nil, err
	}
	if s.SelectCaretaker, _, err = qb.Select("voluntario_cpf").
		From(schema.CuidaLar).
		Where(squirrel.Eq{"lar_id": 0}).
		Suffix("LIMIT 1").
		ToSql(); err != nil {
		return nil, err
	}
	if s.UpdateResponsible, _, err = qb.Update(schema.LarTemporario).
		Set("responsavel_cpf", "").
		Where(squirrel.Eq{"id": 0}).
		ToSql(); err != nil {
		return nil, err
	}
	return s, nil
}

// Insert returns the INSERT for table; it panics on a table outside the
// shelter schema.
func (s *Statements) Insert(table string) string {
	q, ok := s.insert[table]
	if !ok {
		panic("seeder: no insert statement for table " + table)
	}
	return q
}
