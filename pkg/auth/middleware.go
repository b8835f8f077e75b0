package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/stageops/pkg/httpx"
	"github.com/ghuser/stageops/pkg/logger"
)

const sessionName = "stageops_session"

// Session value keys written by the (out-of-scope) login flow.
const (
	sessionActorIDKey    = "actor_id"
	sessionActorNameKey  = "actor_name"
	sessionActorRoleKey  = "actor_role"
	sessionSupplierIDKey = "supplier_id"
)

// RequireActor is a chi middleware that resolves the acting credential and
// injects it into the request context. The credential is read from the
// session cookie; issuing sessions (login) is an external collaborator's job.
// Returns 401 Unauthorized when the session is missing or incomplete.
//
// After this middleware, handlers can safely call auth.IdentityFromCtx(r.Context()).
func RequireActor(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			identity, ok := identityFromSession(session)
			if !ok {
				log.WarnContext(r.Context(), "session missing actor credential")
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func identityFromSession(session *sessions.Session) (Identity, bool) {
	idStr, ok := session.Values[sessionActorIDKey].(string)
	if !ok || idStr == "" {
		return Identity{}, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Identity{}, false
	}

	name, _ := session.Values[sessionActorNameKey].(string)
	role, ok := session.Values[sessionActorRoleKey].(string)
	if !ok || role == "" {
		return Identity{}, false
	}

	identity := Identity{ID: id, Name: name, Role: role}
	if supStr, ok := session.Values[sessionSupplierIDKey].(string); ok && supStr != "" {
		sup, err := uuid.Parse(supStr)
		if err != nil {
			return Identity{}, false
		}
		identity.SupplierID = sup
	}
	return identity, true
}
