package templates

import "agencia_xpto/internal/domain/entities"

// Service catalog keys accepted by the wizard.
const (
	ServiceKeyWebDesigner = "web_designer"
	ServiceKeySocialMedia = "social_media"
	ServiceKeyTrafegoPago = "trafego_pago"
	ServiceKeyVideo       = "video"
	ServiceKeyCustom      = "custom"
)

// ServiceTemplate describes a predefined service: its title, scope items and
// service-specific clauses, all with {{KEY}} placeholders.
type ServiceTemplate struct {
	Titulo               string
	Escopo               []string
	ClausulasEspecificas []string
}

// Document is the rendered output handed to the PDF collaborator: plain
// interpolated sections, no layout.
type Document struct {
	Titulo string  `json:"titulo"`
	Secoes []Secao `json:"secoes"`
}

type Secao struct {
	Titulo     string   `json:"titulo"`
	Paragrafos []string `json:"paragrafos"`
}

var serviceCatalog = map[string]ServiceTemplate{
	ServiceKeyWebDesigner: {
		Titulo: "Web Designer",
		Escopo: []string{
			"Criação e manutenção de páginas institucionais.",
			"Ajustes de identidade visual aplicados ao site.",
			"Entrega dos arquivos-fonte ao final da vigência.",
		},
	},
	ServiceKeySocialMedia: {
		Titulo: "Social Media",
		Escopo: []string{
			"Planejamento mensal de conteúdo para as redes da CONTRATANTE.",
			"Produção e agendamento de publicações.",
			"Relatório mensal de desempenho.",
		},
	},
	ServiceKeyTrafegoPago: {
		Titulo: "Gestão de Tráfego Pago",
		Escopo: []string{
			"Configuração e otimização de campanhas de mídia paga.",
			"Acompanhamento diário de orçamento e resultados.",
			"Relatório mensal de investimento e retorno.",
		},
		ClausulasEspecificas: []string{
			"O orçamento de mídia é custeado diretamente pela CONTRATANTE e não integra o valor de {{VALOR_TOTAL}} previsto neste contrato.",
		},
	},
	ServiceKeyVideo: {
		Titulo: "Produção de Vídeo",
		Escopo: []string{
			"Captação e edição de vídeos conforme roteiro aprovado.",
			"Entrega em formato adequado a cada plataforma.",
		},
	},
}

// ForService resolves a predefined service template by catalog key. The
// "custom" key is not in the catalog: its template comes from the form fields.
func ForService(key string) (ServiceTemplate, bool) {
	svc, ok := serviceCatalog[key]
	return svc, ok
}

var baseClauses = []struct {
	titulo string
	textos []string
}{
	{
		titulo: "Identificação das Partes",
		textos: []string{
			"CONTRATANTE: {{CONTRATANTE_RAZAO}}, inscrita no CNPJ sob o nº {{CONTRATANTE_CNPJ}}, com sede em {{CONTRATANTE_ENDERECO}}.",
			"CONTRATADA: {{PRESTADOR_NOME}}, inscrita no CPF sob o nº {{PRESTADOR_CPF}}, residente em {{PRESTADOR_ENDERECO}}, e-mail {{PRESTADOR_EMAIL}}.",
		},
	},
	{
		titulo: "Objeto",
		textos: []string{
			"O presente contrato tem por objeto a prestação de serviços de {{SERVICO_TITULO}} pela CONTRATADA em favor da CONTRATANTE.",
			"A CONTRATADA executará os serviços com autonomia técnica, sem subordinação, pessoalidade ou exclusividade.",
		},
	},
	{
		titulo: "Vigência",
		textos: []string{
			"Este contrato vigora de {{DATA_INICIO}} a {{DATA_FIM}}, pelo prazo de {{VIGENCIA_DIAS}} dias.",
		},
	},
	{
		titulo: "Pagamento",
		textos: []string{
			"Pela prestação dos serviços a CONTRATANTE pagará à CONTRATADA o valor total de R$ {{VALOR_TOTAL}}, por meio de {{FORMA_PAGAMENTO}}, em até {{PRAZO_PAGAMENTO_DIAS}} dias após a emissão da nota fiscal.",
			"Dados para pagamento: banco {{BANCO}}, agência {{AGENCIA}}, conta {{CONTA}}, chave PIX {{PIX}}.",
		},
	},
	{
		titulo: "Confidencialidade e LGPD",
		textos: []string{
			"As partes manterão sigilo sobre informações confidenciais e tratarão dados pessoais em conformidade com a Lei nº 13.709/2018 (LGPD).",
		},
	},
	{
		titulo: "Propriedade Intelectual",
		textos: []string{
			"Os materiais produzidos em razão deste contrato pertencem à CONTRATANTE após a quitação integral dos valores devidos.",
		},
	},
	{
		titulo: "Não Concorrência",
		textos: []string{
			"A CONTRATADA se obriga, por {{NAO_CONCORRENCIA_MESES}} meses após o término deste contrato, a não prestar serviços concorrentes aos clientes diretos da CONTRATANTE, sob pena de multa de R$ {{NAO_CONCORRENCIA_MULTA_VALOR}}.",
		},
	},
	{
		titulo: "Rescisão",
		textos: []string{
			"Qualquer das partes pode rescindir este contrato mediante aviso prévio de {{AVISO_PREVIO_DIAS}} dia(s); o descumprimento de obrigação contratual sujeita a parte infratora à multa de {{MULTA_PERCENTUAL}}% sobre o valor total.",
		},
	},
	{
		titulo: "Foro",
		textos: []string{
			"Fica eleito o foro da comarca de {{FORO_CIDADE}}/{{FORO_UF}} para dirimir quaisquer controvérsias oriundas deste contrato.",
		},
	},
}

var distratoClauses = []struct {
	titulo string
	textos []string
}{
	{
		titulo: "Do Distrato",
		textos: []string{
			"As partes resolvem, de comum acordo, rescindir o contrato de prestação de serviços celebrado em {{DATA_DISTRATO}} entre {{CONTRATANTE_RAZAO}} e {{PRESTADOR_NOME}}.",
		},
	},
	{
		titulo: "Do Acerto Financeiro",
		textos: []string{
			"A CONTRATANTE pagará à CONTRATADA, a título de acerto final, o valor de R$ {{VALOR_ACERTO}}, com quitação em {{DATA_ACERTO}}.",
		},
	},
	{
		titulo: "Da Devolução de Materiais",
		textos: []string{
			"A CONTRATADA devolverá acessos, credenciais e materiais da CONTRATANTE no prazo de {{PRAZO_DEVOLUCAO}}.",
		},
	},
	{
		titulo: "Da Quitação",
		textos: []string{
			"Cumpridas as obrigações acima, as partes dão-se mútua e irrevogável quitação, nada mais podendo reclamar uma da outra a qualquer título.",
			"Fica eleito o foro da comarca de {{FORO_CIDADE}}/{{FORO_UF}}.",
		},
	},
}

// RenderDocument interpolates the template set for the contract's kind into a
// plain document structure.
func RenderDocument(c entities.Contract) Document {
	values := PlaceholderMap(c)

	if c.Kind == entities.ContractKindDistrato {
		doc := Document{Titulo: "Termo de Distrato de Prestação de Serviços"}
		for _, clause := range distratoClauses {
			doc.Secoes = append(doc.Secoes, Secao{
				Titulo:     clause.titulo,
				Paragrafos: InterpolateSlice(clause.textos, values),
			})
		}
		return doc
	}

	doc := Document{Titulo: "Contrato de Prestação de Serviços — " + Interpolate("{{SERVICO_TITULO}}", values)}
	for _, clause := range baseClauses {
		sec := Secao{Titulo: clause.titulo, Paragrafos: InterpolateSlice(clause.textos, values)}
		doc.Secoes = append(doc.Secoes, sec)

		// The service scope rides right after the object clause.
		if clause.titulo == "Objeto" {
			if escopo := serviceScope(c, values); len(escopo) > 0 {
				doc.Secoes = append(doc.Secoes, Secao{Titulo: "Escopo dos Serviços", Paragrafos: escopo})
			}
		}
	}
	return doc
}

func serviceScope(c entities.Contract, values map[string]any) []string {
	if c.ServicoChave == ServiceKeyCustom {
		return InterpolateSlice([]string{"{{SERVICO_CUSTOM_ESCOPO}}", "{{SERVICO_CUSTOM_CLAUSULAS}}"}, values)
	}
	svc, ok := ForService(c.ServicoChave)
	if !ok {
		return nil
	}
	out := InterpolateSlice(svc.Escopo, values)
	return append(out, InterpolateSlice(svc.ClausulasEspecificas, values)...)
}
