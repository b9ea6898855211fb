package validate_test

import (
	"testing"

	"github.com/printfarmlabs/stockpile/pkg/validate"
)

type skuInput struct {
	SKU         string `json:"sku"          validate:"required,max=100"`
	Description string `json:"description"  validate:"nullable,max=2000"`
	Category    string `json:"category"     validate:"required,in=filament,consumable,wear_part"`
	SupplierURL string `json:"supplier_url" validate:"nullable,url"`
	Quantity    int    `json:"quantity"     validate:"required,gte=1"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(skuInput{
		SKU:         "PLA-BLK",
		Description: "1kg black PLA spool",
		Category:    "filament",
		SupplierURL: "", // nullable — allowed to be empty
		Quantity:    10,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(skuInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["sku"]; !ok {
		t.Error("expected sku to be required")
	}
	if _, ok := errs["category"]; !ok {
		t.Error("expected category to be required")
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Category string `json:"category" validate:"required,in=filament,consumable,wear_part"`
	}
	if errs := validate.Struct(in{Category: "resin"}); !validate.HasErrors(errs) {
		t.Error("expected invalid category to fail")
	}
	if errs := validate.Struct(in{Category: "wear_part"}); validate.HasErrors(errs) {
		t.Errorf("expected wear_part to pass: %v", errs)
	}
}

func TestInRuleFollowedByAnother(t *testing.T) {
	type in struct {
		Direction string `json:"direction" validate:"required,in=receive,remove,max=10"`
	}
	if errs := validate.Struct(in{Direction: "receive"}); validate.HasErrors(errs) {
		t.Errorf("expected receive to pass: %v", errs)
	}
	if errs := validate.Struct(in{Direction: "destroy"}); !validate.HasErrors(errs) {
		t.Error("expected invalid direction to fail")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required,gte=1"`
	}
	if errs := validate.Struct(in{Quantity: -3}); !validate.HasErrors(errs) {
		t.Error("expected negative quantity to fail")
	}
	if errs := validate.Struct(in{Quantity: 5}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 5 to pass, got: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		SupplierURL string `json:"supplier_url" validate:"nullable,url"`
	}
	// Empty string — nullable, should pass even though it's not a URL
	if errs := validate.Struct(in{SupplierURL: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// Non-empty but invalid URL — should fail
	if errs := validate.Struct(in{SupplierURL: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestURLRule(t *testing.T) {
	type in struct {
		Site string `json:"site" validate:"required,url"`
	}
	if errs := validate.Struct(in{Site: "https://spool.supply/pla-black"}); validate.HasErrors(errs) {
		t.Errorf("expected valid URL to pass: %v", errs)
	}
	if errs := validate.Struct(in{Site: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestMaxRuleOnStrings(t *testing.T) {
	type in struct {
		SKU string `json:"sku" validate:"required,max=5"`
	}
	if errs := validate.Struct(in{SKU: "PLA-BLACK-1KG"}); !validate.HasErrors(errs) {
		t.Error("expected over-length sku to fail")
	}
	if errs := validate.Struct(in{SKU: "PLA"}); validate.HasErrors(errs) {
		t.Errorf("expected short sku to pass: %v", errs)
	}
}
