package request

import (
	"encoding/json"
	"testing"
)

func TestProposalCreateRequest_ToEntity(t *testing.T) {
	r := ProposalCreateRequest{
		Client: ClientRequest{Name: " Maria ", Company: " Acme ", Email: " maria@test.com "},
		Term:   6,
	}

	p := r.ToEntity()
	if p.Client.Name != "Maria" || p.Client.Company != "Acme" || p.Client.Email != "maria@test.com" {
		t.Fatalf("expected trimmed client fields: %+v", p.Client)
	}
	if p.Term != 6 {
		t.Fatalf("expected term 6, got %d", p.Term)
	}
}

func TestProposalServicesRequest_ToEntities(t *testing.T) {
	r := ProposalServicesRequest{
		Services: []ServiceLineItemRequest{
			{ID: "s1", Type: "social", Title: "Social Media", IsMonthly: true, Term: 6, Qty: 1, UnitValue: 1500},
			{ID: "s2", Type: "web", Title: "Site", Qty: 1, UnitValue: 4000},
		},
	}

	items := r.ToEntities()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Type != "social" || !items[0].IsMonthly || items[0].Term != 6 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].UnitValue != 4000 || items[1].IsMonthly {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestProposalConditionsRequest_LooseTypes(t *testing.T) {
	// The wizard sends entry/installments as whatever the staff typed.
	body := []byte(`{"conditions":{"social":{"method":"pix","entry":"R$ 1.000,00","installments":5},"web":{"entry":400,"installments":"4x"}}}`)

	var r ProposalConditionsRequest
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conditions := r.ToEntities()
	if conditions["social"].Entry != "R$ 1.000,00" {
		t.Fatalf("expected string entry preserved, got %v", conditions["social"].Entry)
	}
	if conditions["social"].Installments != float64(5) {
		t.Fatalf("expected numeric installments, got %v", conditions["social"].Installments)
	}
	if conditions["web"].Entry != float64(400) {
		t.Fatalf("expected numeric entry, got %v", conditions["web"].Entry)
	}
	if conditions["web"].Installments != "4x" {
		t.Fatalf("expected string installments preserved, got %v", conditions["web"].Installments)
	}
}
