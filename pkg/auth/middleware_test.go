package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

func newSession(t *testing.T, values map[interface{}]interface{}) *sessions.Session {
	t.Helper()
	store := sessions.NewCookieStore([]byte("test-key"))
	r := httptest.NewRequest("GET", "/", nil)
	session, err := store.Get(r, sessionName)
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	for k, v := range values {
		session.Values[k] = v
	}
	return session
}

func TestIdentityFromSession(t *testing.T) {
	actorID := uuid.New()
	supplierID := uuid.New()

	t.Run("complete supplier session", func(t *testing.T) {
		session := newSession(t, map[interface{}]interface{}{
			sessionActorIDKey:    actorID.String(),
			sessionActorNameKey:  "Kamau",
			sessionActorRoleKey:  "supplier",
			sessionSupplierIDKey: supplierID.String(),
		})

		identity, ok := identityFromSession(session)
		if !ok {
			t.Fatal("expected identity")
		}
		if identity.ID != actorID || identity.Name != "Kamau" || identity.Role != "supplier" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		if identity.SupplierID != supplierID {
			t.Fatalf("expected supplier binding %s, got %s", supplierID, identity.SupplierID)
		}
	})

	t.Run("finance session without supplier binding", func(t *testing.T) {
		session := newSession(t, map[interface{}]interface{}{
			sessionActorIDKey:   actorID.String(),
			sessionActorNameKey: "Otieno",
			sessionActorRoleKey: "finance",
		})

		identity, ok := identityFromSession(session)
		if !ok {
			t.Fatal("expected identity")
		}
		if identity.SupplierID != uuid.Nil {
			t.Fatal("expected no supplier binding")
		}
	})

	t.Run("missing actor id", func(t *testing.T) {
		session := newSession(t, map[interface{}]interface{}{
			sessionActorRoleKey: "finance",
		})
		if _, ok := identityFromSession(session); ok {
			t.Fatal("expected no identity")
		}
	})

	t.Run("missing role", func(t *testing.T) {
		session := newSession(t, map[interface{}]interface{}{
			sessionActorIDKey: actorID.String(),
		})
		if _, ok := identityFromSession(session); ok {
			t.Fatal("expected no identity")
		}
	})

	t.Run("malformed actor id", func(t *testing.T) {
		session := newSession(t, map[interface{}]interface{}{
			sessionActorIDKey:   "not-a-uuid",
			sessionActorRoleKey: "finance",
		})
		if _, ok := identityFromSession(session); ok {
			t.Fatal("expected no identity")
		}
	})

	t.Run("malformed supplier id", func(t *testing.T) {
		session := newSession(t, map[interface{}]interface{}{
			sessionActorIDKey:    actorID.String(),
			sessionActorRoleKey:  "supplier",
			sessionSupplierIDKey: "not-a-uuid",
		})
		if _, ok := identityFromSession(session); ok {
			t.Fatal("expected no identity")
		}
	})
}
