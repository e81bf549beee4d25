package entities

import "time"

// ContractKind distinguishes the two documents the wizard can produce.

type ContractKind string

const (
	ContractKindContrato ContractKind = "contrato"
	ContractKindDistrato ContractKind = "distrato"
)

// PaymentMethod values accepted in the contract parameters step.
const (
	PaymentMethodPix           = "PIX"
	PaymentMethodTransferencia = "Transferência"
	PaymentMethodBoleto        = "Boleto"
	PaymentMethodOutro         = "Outro"
)

// Party is one side of the agreement. Contratante is a company (CNPJ +
// representative); prestador is an individual (CPF), so some fields stay empty
// depending on the side.
type Party struct {
	Name               string `json:"name"`
	CNPJ               string `json:"cnpj,omitempty"`
	CPF                string `json:"cpf,omitempty"`
	RG                 string `json:"rg,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Address            string `json:"address,omitempty"`
	RepresentativeName string `json:"representative_name,omitempty"`
	RepresentativeCPF  string `json:"representative_cpf,omitempty"`
}

// Contract is the form data collected by the contract wizard, persisted so the
// document can be re-rendered at any time.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ValorTotal and ValorAcerto are loosely typed for the same reason as
// PaymentCondition.Entry: currency masks on the UI side send either strings or
// numbers.
type Contract struct {
	ID          string       `json:"id"`
	Kind        ContractKind `json:"kind"`
	Contratante Party        `json:"contratante"`
	Prestador   Party        `json:"prestador"`

	// General parameters (ISO dates, "YYYY-MM-DD").
	DataInicio     string `json:"data_inicio,omitempty"`
	DataFim        string `json:"data_fim,omitempty"`
	ValorTotal     any    `json:"valor_total,omitempty"`
	FormaPagamento string `json:"forma_pagamento,omitempty"`
	DiaVencimento  string `json:"dia_vencimento,omitempty"`
	Banco          string `json:"banco,omitempty"`
	Agencia        string `json:"agencia,omitempty"`
	Conta          string `json:"conta,omitempty"`
	Pix            string `json:"pix,omitempty"`
	ForoCidade     string `json:"foro_cidade,omitempty"`
	ForoUF         string `json:"foro_uf,omitempty"`

	// Service selection: a catalog key, or "custom" with free-form fields.
	ServicoChave           string `json:"servico_chave,omitempty"`
	ServicoCustomTitulo    string `json:"servico_custom_titulo,omitempty"`
	ServicoCustomEscopo    string `json:"servico_custom_escopo,omitempty"`
	ServicoCustomClausulas string `json:"servico_custom_clausulas,omitempty"`

	// Distrato-only fields.
	DataDistrato   string `json:"data_distrato,omitempty"`
	ValorAcerto    any    `json:"valor_acerto,omitempty"`
	PrazoDevolucao string `json:"prazo_devolucao,omitempty"`
	DataAcerto     string `json:"data_acerto,omitempty"`

	// Placeholder overrides applied last when rendering.
	Params map[string]any `json:"params,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
