package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/config"
	"github.com/smilodon-digital/invoicing-service/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg, err := config.NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewService(NewStores(), nil, log, cfg)
}

func TestAddProductValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddProduct(models.Product{Price: 10}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := svc.AddProduct(models.Product{Name: "Teclado", Price: -1}); err == nil {
		t.Fatal("expected error for negative price")
	}
	if _, err := svc.AddProduct(models.Product{Name: "Teclado", Stock: -1}); err == nil {
		t.Fatal("expected error for negative stock")
	}

	created, err := svc.AddProduct(models.Product{Name: "Teclado", Price: 7500, Stock: 30, Category: "Informática", Active: true})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("product not stamped: %+v", created)
	}
}

func TestUpdateProductPatch(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.AddProduct(models.Product{Name: "Teclado", Price: 7500, Stock: 30, Active: true})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}

	price := 8000.0
	active := false
	found, err := svc.UpdateProduct(created.ID, ProductPatch{Price: &price, Active: &active})
	if err != nil || !found {
		t.Fatalf("update product: found=%v err=%v", found, err)
	}

	got, _ := svc.GetProduct(created.ID)
	if got.Price != 8000 || got.Active {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Name != "Teclado" || got.Stock != 30 {
		t.Fatalf("patch touched unrelated fields: %+v", got)
	}

	bad := -5.0
	if _, err := svc.UpdateProduct(created.ID, ProductPatch{Price: &bad}); err == nil {
		t.Fatal("expected error for negative price patch")
	}

	found, err = svc.UpdateProduct("missing", ProductPatch{Price: &price})
	if err != nil {
		t.Fatalf("absent-id patch must not error: %v", err)
	}
	if found {
		t.Fatal("absent-id patch must report no match")
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	svc := newTestService(t)
	for _, p := range []models.Product{
		{Name: "Laptop", Category: "Informática"},
		{Name: "Mesa", Category: "Mobiliário"},
		{Name: "Monitor", Category: "Informática"},
	} {
		if _, err := svc.AddProduct(p); err != nil {
			t.Fatalf("add product: %v", err)
		}
	}

	got := svc.Categories()
	if len(got) != 2 || got[0] != "Informática" || got[1] != "Mobiliário" {
		t.Fatalf("unexpected categories: %v", got)
	}
}

func TestAddUserDefaultsAndValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddUser(models.User{Email: "a@b.c", Department: "TI"}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := svc.AddUser(models.User{Name: "Ana", Email: "a@b.c"}); err == nil {
		t.Fatal("expected error for missing department")
	}
	if _, err := svc.AddUser(models.User{Name: "Ana", Email: "a@b.c", Department: "TI", Role: "root"}); err == nil {
		t.Fatal("expected error for unknown role")
	}

	created, err := svc.AddUser(models.User{Name: "Ana", Email: "a@b.c", Department: "TI"})
	if err != nil {
		t.Fatalf("add user: %v", err)
	}
	if created.Role != models.RoleUser || created.Status != models.UserStatusActive {
		t.Fatalf("defaults not applied: %+v", created)
	}
	if created.LastLogin.IsZero() {
		t.Fatal("expected last login to be initialized")
	}
}

func TestSetUserStatus(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.AddUser(models.User{Name: "Ana", Email: "a@b.c", Department: "TI"})
	if err != nil {
		t.Fatalf("add user: %v", err)
	}

	updated, err := svc.SetUserStatus(created.ID, models.UserStatusInactive)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != models.UserStatusInactive {
		t.Fatalf("status not applied: %+v", updated)
	}

	if _, err := svc.SetUserStatus(created.ID, "suspended"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := svc.SetUserStatus("missing", models.UserStatusActive); err == nil {
		t.Fatal("expected error for unknown user")
	}
}
