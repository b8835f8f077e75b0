package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestIdentityFromCtx(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := Identity{
			ID:   uuid.New(),
			Name: "Kamau",
			Role: "supplier",

			SupplierID: uuid.New(),
		}
		ctx := WithIdentity(context.Background(), want)

		got, err := IdentityFromCtx(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("empty context returns ErrNoIdentity", func(t *testing.T) {
		_, err := IdentityFromCtx(context.Background())
		if !errors.Is(err, ErrNoIdentity) {
			t.Fatalf("expected ErrNoIdentity, got %v", err)
		}
	})

	t.Run("zero identity returns ErrNoIdentity", func(t *testing.T) {
		ctx := WithIdentity(context.Background(), Identity{})
		if _, err := IdentityFromCtx(ctx); !errors.Is(err, ErrNoIdentity) {
			t.Fatalf("expected ErrNoIdentity, got %v", err)
		}
	})
}
