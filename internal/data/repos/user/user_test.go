package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/fedaykin-adel/sietch-shop/internal/data/repos/testutil"
	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
)

func TestCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(testutil.DB(t), testutil.Logger(t))

	created, err := repo.Create(ctx, tx, &types.User{
		ID:           uuid.New(),
		Name:         "Mapes",
		Email:        "mapes@arrakis.dev",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID == nil || byID.Email != "mapes@arrakis.dev" {
		t.Fatalf("unexpected user: %+v", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, tx, "mapes@arrakis.dev")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID {
		t.Fatalf("unexpected user: %+v", byEmail)
	}
}

func TestLookupMissing(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(testutil.DB(t), testutil.Logger(t))

	byID, err := repo.GetByID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID != nil {
		t.Fatalf("expected nil for unknown id, got %+v", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, tx, "nobody@arrakis.dev")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail != nil {
		t.Fatalf("expected nil for unknown email, got %+v", byEmail)
	}
}

func TestEmailExists(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(testutil.DB(t), testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "shadout@arrakis.dev")

	exists, err := repo.EmailExists(ctx, tx, u.Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}

	exists, err = repo.EmailExists(ctx, tx, "ghost@arrakis.dev")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if exists {
		t.Fatal("expected email to be absent")
	}
}
