package engine

import (
	"testing"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

func TestFormatItemVariants(t *testing.T) {
	phone := domain.Phone{ID: 1, Model: "Galaxy S24", Brand: "Samsung", Price: 3500, Image: "s24.jpg"}
	got := FormatItem(domain.CategoryPhones, phone)
	fp, ok := got.(domain.FormattedPhone)
	if !ok {
		t.Fatalf("phone formatted as %T", got)
	}
	if fp.Name != "Samsung Galaxy S24" || fp.Brand != "Samsung" || fp.Price != 3500 {
		t.Errorf("unexpected phone projection: %+v", fp)
	}

	recipe := domain.Recipe{ID: 2, Name: "Causa limena", Difficulty: "facil", PrepMinutes: 30, Portions: 4}
	fr, ok := FormatItem(domain.CategoryRecipes, recipe).(domain.FormattedRecipe)
	if !ok || fr.Difficulty != "facil" || fr.PrepMinutes != 30 {
		t.Errorf("unexpected recipe projection: %+v", fr)
	}

	laptop := domain.Laptop{ID: 3, Model: "XPS 13", Brand: "Dell", RAMGB: 16, StorageGB: 512, Price: 4500}
	fl, ok := FormatItem(domain.CategoryLaptops, laptop).(domain.FormattedLaptop)
	if !ok || fl.Name != "Dell XPS 13" || fl.RAMGB != 16 {
		t.Errorf("unexpected laptop projection: %+v", fl)
	}

	place := domain.Place{ID: 4, Name: "Huaca Pucllana", Address: "Miraflores", Rating: 4.7}
	fpl, ok := FormatItem(domain.CategoryPlaces, place).(domain.FormattedPlace)
	if !ok || fpl.Address != "Miraflores" || fpl.Rating != 4.7 {
		t.Errorf("unexpected place projection: %+v", fpl)
	}

	cake := domain.Cake{ID: 5, Name: "Selva negra", Flavor: "chocolate", Price: 95}
	if fc, ok := FormatItem(domain.CategoryCakes, cake).(domain.FormattedCake); !ok || fc.Flavor != "chocolate" {
		t.Errorf("unexpected cake projection: %+v", fc)
	}

	sport := domain.Sport{ID: 6, Name: "Futbol 7", Discipline: "futbol"}
	if fs, ok := FormatItem(domain.CategorySports, sport).(domain.FormattedSport); !ok || fs.Discipline != "futbol" {
		t.Errorf("unexpected sport projection: %+v", fs)
	}

	accessory := domain.Accessory{ID: 7, Name: "Teclado mecanico", Brand: "Logitech", Price: 350}
	if fa, ok := FormatItem(domain.CategoryAccessories, accessory).(domain.FormattedAccessory); !ok || fa.Brand != "Logitech" {
		t.Errorf("unexpected accessory projection: %+v", fa)
	}
}

func TestFormatItemNil(t *testing.T) {
	if got := FormatItem(domain.CategoryPhones, nil); got != nil {
		t.Errorf("nil raw item must stay nil, got %v", got)
	}
}

func TestFormatItemPassthrough(t *testing.T) {
	// A generic product served through the phones fallback does not match
	// the phone shape: it passes through untouched.
	product := domain.Product{ID: 9, Name: "Celular basico", Brand: "Nokia", Price: 300}
	got := FormatItem(domain.CategoryPhones, product)
	if !sameProduct(got, product) {
		t.Errorf("fallback product should pass through unchanged, got %#v", got)
	}

	// Unknown category tag: defensive passthrough, not an error.
	recipe := domain.Recipe{ID: 10, Name: "Tallarin verde"}
	got = FormatItem(domain.Category("otros"), recipe)
	if r, ok := got.(domain.Recipe); !ok || r.ID != 10 {
		t.Errorf("unknown category should pass raw through, got %#v", got)
	}
}

func sameProduct(got any, want domain.Product) bool {
	p, ok := got.(domain.Product)
	return ok && p == want
}
