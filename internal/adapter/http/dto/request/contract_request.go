package request

import "agencia_xpto/internal/domain/entities"

type PartyRequest struct {
	Name               string `json:"name"`
	CNPJ               string `json:"cnpj"`
	CPF                string `json:"cpf"`
	RG                 string `json:"rg"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	RepresentativeName string `json:"representative_name"`
	RepresentativeCPF  string `json:"representative_cpf"`
}

func (r PartyRequest) toEntity() entities.Party {
	return entities.Party{
		Name:               r.Name,
		CNPJ:               r.CNPJ,
		CPF:                r.CPF,
		RG:                 r.RG,
		Email:              r.Email,
		Phone:              r.Phone,
		Address:            r.Address,
		RepresentativeName: r.RepresentativeName,
		RepresentativeCPF:  r.RepresentativeCPF,
	}
}

// ContractCreateRequest is the full contract wizard form submitted at once.
// Validation of the step rules happens in the use case, not here, so a
// half-filled form returns a domain error instead of a binding error.
type ContractCreateRequest struct {
	Kind        string       `json:"kind"`
	Contratante PartyRequest `json:"contratante"`
	Prestador   PartyRequest `json:"prestador"`

	DataInicio     string `json:"data_inicio"`
	DataFim        string `json:"data_fim"`
	ValorTotal     any    `json:"valor_total"`
	FormaPagamento string `json:"forma_pagamento"`
	DiaVencimento  string `json:"dia_vencimento"`
	Banco          string `json:"banco"`
	Agencia        string `json:"agencia"`
	Conta          string `json:"conta"`
	Pix            string `json:"pix"`
	ForoCidade     string `json:"foro_cidade"`
	ForoUF         string `json:"foro_uf"`

	ServicoChave           string `json:"servico_chave"`
	ServicoCustomTitulo    string `json:"servico_custom_titulo"`
	ServicoCustomEscopo    string `json:"servico_custom_escopo"`
	ServicoCustomClausulas string `json:"servico_custom_clausulas"`

	DataDistrato   string `json:"data_distrato"`
	ValorAcerto    any    `json:"valor_acerto"`
	PrazoDevolucao string `json:"prazo_devolucao"`
	DataAcerto     string `json:"data_acerto"`

	Params map[string]any `json:"params"`
}

func (r ContractCreateRequest) ToEntity() entities.Contract {
	return entities.Contract{
		Kind:        entities.ContractKind(r.Kind),
		Contratante: r.Contratante.toEntity(),
		Prestador:   r.Prestador.toEntity(),

		DataInicio:     r.DataInicio,
		DataFim:        r.DataFim,
		ValorTotal:     r.ValorTotal,
		FormaPagamento: r.FormaPagamento,
		DiaVencimento:  r.DiaVencimento,
		Banco:          r.Banco,
		Agencia:        r.Agencia,
		Conta:          r.Conta,
		Pix:            r.Pix,
		ForoCidade:     r.ForoCidade,
		ForoUF:         r.ForoUF,

		ServicoChave:           r.ServicoChave,
		ServicoCustomTitulo:    r.ServicoCustomTitulo,
		ServicoCustomEscopo:    r.ServicoCustomEscopo,
		ServicoCustomClausulas: r.ServicoCustomClausulas,

		DataDistrato:   r.DataDistrato,
		ValorAcerto:    r.ValorAcerto,
		PrazoDevolucao: r.PrazoDevolucao,
		DataAcerto:     r.DataAcerto,

		Params: r.Params,
	}
}
