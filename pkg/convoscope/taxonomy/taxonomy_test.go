package taxonomy

import "testing"

func TestAddPreservesOrder(t *testing.T) {
	tax := New(nil)
	tax.Add("B", "B1", []string{"x"})
	tax.Add("A", "A1", []string{"y"})
	tax.Add("A", "A2", []string{"z"})

	entries := tax.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Category != "B" || entries[1].Subcategory != "A1" || entries[2].Subcategory != "A2" {
		t.Errorf("Entries out of insertion order: %+v", entries)
	}
}

func TestKeywordsLowercased(t *testing.T) {
	tax := New([]Entry{{Category: "C", Subcategory: "S", Keywords: []string{"PEDIDO", "Guia"}}})

	kws := tax.Entries()[0].Keywords
	if kws[0] != "pedido" || kws[1] != "guia" {
		t.Errorf("Keywords should be lowercased, got %v", kws)
	}
}

func TestCategoriesDeduplicated(t *testing.T) {
	tax := New(nil)
	tax.Add("A", "A1", nil)
	tax.Add("A", "A2", nil)
	tax.Add("B", "B1", nil)

	cats := tax.Categories()
	if len(cats) != 2 || cats[0] != "A" || cats[1] != "B" {
		t.Errorf("Expected [A B], got %v", cats)
	}

	subs := tax.Subcategories("A")
	if len(subs) != 2 || subs[0] != "A1" || subs[1] != "A2" {
		t.Errorf("Expected [A1 A2], got %v", subs)
	}
}

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()

	if tax.Len() != 20 {
		t.Fatalf("Expected 20 entries, got %d", tax.Len())
	}

	first := tax.Entries()[0]
	if first.Category != "Gestión de Pedidos" || first.Subcategory != "Rastreo y Estatus" {
		t.Errorf("Unexpected first entry: %+v", first)
	}

	last := tax.Entries()[tax.Len()-1]
	if last.Category != UnclassifiedCategory || last.Subcategory != UnclassifiedSubcategory {
		t.Errorf("Unexpected last entry: %+v", last)
	}

	cats := tax.Categories()
	if len(cats) != 8 {
		t.Errorf("Expected 8 categories, got %d: %v", len(cats), cats)
	}
	if cats[len(cats)-2] != GeneralCategory {
		t.Errorf("Expected %q before the fallback, got %v", GeneralCategory, cats)
	}
}
