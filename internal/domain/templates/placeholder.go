package templates

import "agencia_xpto/internal/domain/entities"

// PlaceholderMap flattens a contract form into the placeholder dictionary the
// clause templates reference.
//
// Precedence (later wins): common defaults < form fields < form params.
// NAO_CONCORRENCIA_MULTA_VALOR overrides are normalized to pt-BR money so the
// clause text never mixes formats.
func PlaceholderMap(c entities.Contract) map[string]any {
	servicoTitulo := ""
	if c.ServicoChave == ServiceKeyCustom {
		servicoTitulo = c.ServicoCustomTitulo
		if servicoTitulo == "" {
			servicoTitulo = "Serviço Customizado"
		}
	} else if svc, ok := ForService(c.ServicoChave); ok {
		servicoTitulo = svc.Titulo
	}

	values := map[string]any{
		// Defaults shared by every contract; params may override them below.
		"VIGENCIA_DIAS":                diffDaysInclusive(c.DataInicio, c.DataFim),
		"PRAZO_PAGAMENTO_DIAS":         10,
		"FORCA_MAIOR_DIAS":             60,
		"NAO_CONCORRENCIA_MESES":       6,
		"NAO_CONCORRENCIA_MULTA_VALOR": moneyText("20000"),
		"AVISO_PREVIO_DIAS":            1,
		"MULTA_PERCENTUAL":             10,

		"CONTRATANTE_RAZAO":    c.Contratante.Name,
		"CONTRATANTE_CNPJ":     c.Contratante.CNPJ,
		"CONTRATANTE_ENDERECO": c.Contratante.Address,

		"PRESTADOR_NOME":     c.Prestador.Name,
		"PRESTADOR_CPF":      c.Prestador.CPF,
		"PRESTADOR_RG":       c.Prestador.RG,
		"PRESTADOR_EMAIL":    c.Prestador.Email,
		"PRESTADOR_ENDERECO": c.Prestador.Address,
		"PRESTADOR_TELEFONE": c.Prestador.Phone,

		"SERVICO_TITULO":  servicoTitulo,
		"DATA_INICIO":     c.DataInicio,
		"DATA_FIM":        c.DataFim,
		"VALOR_TOTAL":     c.ValorTotal,
		"FORMA_PAGAMENTO": c.FormaPagamento,
		"DIA_VENCIMENTO":  c.DiaVencimento,
		"BANCO":           c.Banco,
		"AGENCIA":         c.Agencia,
		"CONTA":           c.Conta,
		"PIX":             c.Pix,
		"FORO_CIDADE":     c.ForoCidade,
		"FORO_UF":         c.ForoUF,

		"SERVICO_CUSTOM_TITULO":    c.ServicoCustomTitulo,
		"SERVICO_CUSTOM_ESCOPO":    c.ServicoCustomEscopo,
		"SERVICO_CUSTOM_CLAUSULAS": c.ServicoCustomClausulas,

		"DATA_DISTRATO":   c.DataDistrato,
		"VALOR_ACERTO":    c.ValorAcerto,
		"PRAZO_DEVOLUCAO": c.PrazoDevolucao,
		"DATA_ACERTO":     c.DataAcerto,
	}

	for k, v := range c.Params {
		if k == "NAO_CONCORRENCIA_MULTA_VALOR" {
			values[k] = moneyText(v)
			continue
		}
		values[k] = v
	}
	return values
}
