package response

import (
	"time"

	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/domain/templates"
)

type ContractResponse struct {
	ID          string         `json:"id"`
	Kind        string         `json:"kind"`
	Contratante entities.Party `json:"contratante"`
	Prestador   entities.Party `json:"prestador"`

	DataInicio     string `json:"data_inicio,omitempty"`
	DataFim        string `json:"data_fim,omitempty"`
	ValorTotal     any    `json:"valor_total,omitempty"`
	FormaPagamento string `json:"forma_pagamento,omitempty"`
	ForoCidade     string `json:"foro_cidade,omitempty"`
	ForoUF         string `json:"foro_uf,omitempty"`

	ServicoChave string `json:"servico_chave,omitempty"`
	DataDistrato string `json:"data_distrato,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		Kind:        string(c.Kind),
		Contratante: c.Contratante,
		Prestador:   c.Prestador,

		DataInicio:     c.DataInicio,
		DataFim:        c.DataFim,
		ValorTotal:     c.ValorTotal,
		FormaPagamento: c.FormaPagamento,
		ForoCidade:     c.ForoCidade,
		ForoUF:         c.ForoUF,

		ServicoChave: c.ServicoChave,
		DataDistrato: c.DataDistrato,

		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type DocumentSectionResponse struct {
	Titulo     string   `json:"titulo"`
	Paragrafos []string `json:"paragrafos"`
}

// DocumentResponse is the rendered legal document, ready for the front-end to
// lay out and print.
type DocumentResponse struct {
	Titulo string                    `json:"titulo"`
	Secoes []DocumentSectionResponse `json:"secoes"`
}

func FromDocument(d templates.Document) DocumentResponse {
	secoes := make([]DocumentSectionResponse, 0, len(d.Secoes))
	for _, s := range d.Secoes {
		secoes = append(secoes, DocumentSectionResponse{Titulo: s.Titulo, Paragrafos: s.Paragrafos})
	}
	return DocumentResponse{Titulo: d.Titulo, Secoes: secoes}
}
