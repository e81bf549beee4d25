package templates

import (
	"strings"
	"testing"

	"agencia_xpto/internal/domain/entities"
)

func TestInterpolate(t *testing.T) {
	t.Run("replaces known keys", func(t *testing.T) {
		got := Interpolate("Olá {{NOME}}, tudo bem?", map[string]any{"NOME": "Maria"})
		if got != "Olá Maria, tudo bem?" {
			t.Fatalf("unexpected: %q", got)
		}
	})

	t.Run("missing keys render empty", func(t *testing.T) {
		got := Interpolate("valor: {{AUSENTE}}.", map[string]any{})
		if got != "valor: ." {
			t.Fatalf("unexpected: %q", got)
		}
	})

	t.Run("tolerates spaces inside braces", func(t *testing.T) {
		got := Interpolate("{{ NOME }}", map[string]any{"NOME": "X"})
		if got != "X" {
			t.Fatalf("unexpected: %q", got)
		}
	})

	t.Run("DATA keys format iso dates", func(t *testing.T) {
		got := Interpolate("{{DATA_INICIO}}", map[string]any{"DATA_INICIO": "2026-03-15"})
		if got != "15/03/2026" {
			t.Fatalf("unexpected: %q", got)
		}
	})

	t.Run("DATA keys pass through non-iso values", func(t *testing.T) {
		got := Interpolate("{{DATA_INICIO}}", map[string]any{"DATA_INICIO": "15/03/2026"})
		if got != "15/03/2026" {
			t.Fatalf("unexpected: %q", got)
		}
	})

	t.Run("VALOR keys format money", func(t *testing.T) {
		got := Interpolate("{{VALOR_TOTAL}}", map[string]any{"VALOR_TOTAL": 20000})
		if got != "20.000,00" {
			t.Fatalf("unexpected: %q", got)
		}
	})

	t.Run("VALOR keys keep pre-formatted strings", func(t *testing.T) {
		got := Interpolate("{{VALOR_TOTAL}}", map[string]any{"VALOR_TOTAL": "20.000,00"})
		if got != "20.000,00" {
			t.Fatalf("unexpected: %q", got)
		}
	})

	t.Run("empty template", func(t *testing.T) {
		if got := Interpolate("", map[string]any{"A": 1}); got != "" {
			t.Fatalf("unexpected: %q", got)
		}
	})
}

func TestInterpolateSlice(t *testing.T) {
	out := InterpolateSlice([]string{"{{A}}", "{{VAZIO}}", "fixo"}, map[string]any{"A": "a"})
	if len(out) != 2 || out[0] != "a" || out[1] != "fixo" {
		t.Fatalf("unexpected: %v", out)
	}
}

func TestInterpolateMap(t *testing.T) {
	out := InterpolateMap(map[string]string{"k1": "{{A}}!", "k2": "x"}, map[string]any{"A": "a"})
	if out["k1"] != "a!" || out["k2"] != "x" {
		t.Fatalf("unexpected: %v", out)
	}
}

func TestPlaceholderMap(t *testing.T) {
	c := entities.Contract{
		Kind:        entities.ContractKindContrato,
		Contratante: entities.Party{Name: "Agência XPTO LTDA", CNPJ: "00.000.000/0001-00"},
		Prestador:   entities.Party{Name: "João da Silva", CPF: "111.222.333-44"},
		DataInicio:  "2026-01-01",
		DataFim:     "2026-01-31",
		ValorTotal:  "5000",
		ServicoChave: ServiceKeySocialMedia,
		Params:       map[string]any{"MULTA_PERCENTUAL": 20},
	}
	values := PlaceholderMap(c)

	if values["VIGENCIA_DIAS"] != 31 {
		t.Fatalf("expected inclusive 31 days, got %v", values["VIGENCIA_DIAS"])
	}
	if values["SERVICO_TITULO"] != "Social Media" {
		t.Fatalf("unexpected title: %v", values["SERVICO_TITULO"])
	}
	if values["MULTA_PERCENTUAL"] != 20 {
		t.Fatalf("params override lost: %v", values["MULTA_PERCENTUAL"])
	}
	if values["NAO_CONCORRENCIA_MULTA_VALOR"] != "20.000,00" {
		t.Fatalf("unexpected default fine: %v", values["NAO_CONCORRENCIA_MULTA_VALOR"])
	}

	t.Run("invalid dates default vigencia to 1", func(t *testing.T) {
		c := entities.Contract{DataInicio: "2026-01-01"}
		if got := PlaceholderMap(c)["VIGENCIA_DIAS"]; got != 1 {
			t.Fatalf("expected 1, got %v", got)
		}
	})

	t.Run("custom service title falls back", func(t *testing.T) {
		c := entities.Contract{ServicoChave: ServiceKeyCustom}
		if got := PlaceholderMap(c)["SERVICO_TITULO"]; got != "Serviço Customizado" {
			t.Fatalf("unexpected: %v", got)
		}
	})
}

func TestRenderDocument(t *testing.T) {
	t.Run("contrato renders base clauses and scope", func(t *testing.T) {
		doc := RenderDocument(entities.Contract{
			Kind:         entities.ContractKindContrato,
			Contratante:  entities.Party{Name: "Agência XPTO LTDA"},
			Prestador:    entities.Party{Name: "João da Silva"},
			ServicoChave: ServiceKeySocialMedia,
			ValorTotal:   "3000",
		})
		if !strings.Contains(doc.Titulo, "Social Media") {
			t.Fatalf("unexpected title: %q", doc.Titulo)
		}
		var scope *Secao
		for i := range doc.Secoes {
			if doc.Secoes[i].Titulo == "Escopo dos Serviços" {
				scope = &doc.Secoes[i]
			}
		}
		if scope == nil || len(scope.Paragrafos) == 0 {
			t.Fatalf("missing scope section: %+v", doc.Secoes)
		}
		if doc.Secoes[0].Titulo != "Identificação das Partes" {
			t.Fatalf("unexpected first section: %q", doc.Secoes[0].Titulo)
		}
		if !strings.Contains(doc.Secoes[0].Paragrafos[0], "Agência XPTO LTDA") {
			t.Fatalf("contratante not interpolated: %q", doc.Secoes[0].Paragrafos[0])
		}
	})

	t.Run("custom service uses form scope", func(t *testing.T) {
		doc := RenderDocument(entities.Contract{
			Kind:                entities.ContractKindContrato,
			ServicoChave:        ServiceKeyCustom,
			ServicoCustomTitulo: "Consultoria de Marca",
			ServicoCustomEscopo: "Diagnóstico completo de posicionamento.",
		})
		if !strings.Contains(doc.Titulo, "Consultoria de Marca") {
			t.Fatalf("unexpected title: %q", doc.Titulo)
		}
		found := false
		for _, sec := range doc.Secoes {
			if sec.Titulo == "Escopo dos Serviços" {
				found = len(sec.Paragrafos) == 1 && sec.Paragrafos[0] == "Diagnóstico completo de posicionamento."
			}
		}
		if !found {
			t.Fatalf("custom scope not rendered: %+v", doc.Secoes)
		}
	})

	t.Run("distrato renders settlement clauses", func(t *testing.T) {
		doc := RenderDocument(entities.Contract{
			Kind:         entities.ContractKindDistrato,
			Contratante:  entities.Party{Name: "Agência XPTO LTDA"},
			Prestador:    entities.Party{Name: "João da Silva"},
			DataDistrato: "2025-06-01",
			ValorAcerto:  1500.0,
			DataAcerto:   "2026-09-10",
		})
		if doc.Titulo != "Termo de Distrato de Prestação de Serviços" {
			t.Fatalf("unexpected title: %q", doc.Titulo)
		}
		if len(doc.Secoes) != 4 {
			t.Fatalf("expected 4 sections, got %d", len(doc.Secoes))
		}
		if !strings.Contains(doc.Secoes[0].Paragrafos[0], "01/06/2025") {
			t.Fatalf("distrato date not formatted: %q", doc.Secoes[0].Paragrafos[0])
		}
		if !strings.Contains(doc.Secoes[1].Paragrafos[0], "1.500,00") {
			t.Fatalf("settlement value not formatted: %q", doc.Secoes[1].Paragrafos[0])
		}
	})
}
