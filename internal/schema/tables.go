package schema

// Table names of the shelter schema. The DDL files are the source of truth;
// every insert statement is written against these names.
const (
	Endereco          = "endereco"
	Pessoa            = "pessoa"
	Gato              = "gato"
	Campanha          = "campanha"
	Evento            = "evento"
	Voluntario        = "voluntario"
	Adotante          = "adotante"
	Veterinario       = "veterinario"
	LarTemporario     = "lar_temporario"
	Funcao            = "funcao"
	Doacao            = "doacao"
	Participantes     = "participantes"
	Contato           = "contato"
	CuidaLar          = "cuida_lar"
	VoluntariosEvento = "voluntarios_evento"
	GatosEvento       = "gatos_evento"
	FotosGato         = "fotos_gato"
	Hospedagem        = "hospedagem"
	Gasto             = "gasto"
	Procedimento      = "procedimento"
	Preferencia       = "preferencia"
	Triagem           = "triagem"
	FotosTriagem      = "fotos_triagem"
	Adocao            = "adocao"
	Devolucao         = "devolucao"
)

// WipeOrder lists every table children first, so deleting in this order
// never trips a foreign key.
var WipeOrder = []string{
	Devolucao, Adocao, FotosTriagem, Triagem, Preferencia,
	Procedimento, Gasto, Hospedagem, FotosGato, GatosEvento,
	VoluntariosEvento, CuidaLar, Contato, Participantes,
	Doacao, Funcao, LarTemporario, Veterinario, Adotante,
	Voluntario, Evento, Campanha, Gato, Pessoa, Endereco,
}
