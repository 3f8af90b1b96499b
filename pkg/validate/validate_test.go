package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/gearbay/pkg/validate"
)

type partInput struct {
	Title string  `json:"title" validate:"required,min=2,max=200"`
	Email string  `json:"email" validate:"required,email"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Stock int     `json:"stock" validate:"gte=0"`
	Role  string  `json:"role"  validate:"nullable,in=customer,admin"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(partInput{
		Title: "Brake pads",
		Email: "seller@example.com",
		Price: 49.99,
		Stock: 12,
		Role:  "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(partInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	if _, ok := errs["title"]; !ok {
		t.Error("expected title to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestGtRule(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	}
	errs := validate.Struct(in{Price: -5})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price validation error")
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"required,in=customer,admin"`
	}
	if errs := validate.Struct(in{Role: "superuser"}); len(errs) == 0 {
		t.Error("expected role validation error")
	}
	if errs := validate.Struct(in{Role: "admin"}); len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestMinDoesNotParseAsInRule(t *testing.T) {
	// "min=" contains "in=" as a substring; the rule splitter must not
	// treat it as a membership rule.
	type in struct {
		Title string `json:"title" validate:"required,min=2,max=200"`
	}
	if errs := validate.Struct(in{Title: "alternator"}); len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
	if errs := validate.Struct(in{Title: "x"}); len(errs) == 0 {
		t.Error("expected min violation")
	}
}

func TestInRuleAfterMinRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"min=2,in=customer,admin"`
	}
	if errs := validate.Struct(in{Role: "superuser"}); len(errs) == 0 {
		t.Error("expected role validation error")
	}
	if errs := validate.Struct(in{Role: "customer"}); len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Title string `json:"title" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Title: "x"}); len(errs) == 0 {
		t.Error("expected min violation")
	}
	if errs := validate.Struct(in{Title: "toolongtitle"}); len(errs) == 0 {
		t.Error("expected max violation")
	}
	if errs := validate.Struct(in{Title: "axle"}); len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
}
