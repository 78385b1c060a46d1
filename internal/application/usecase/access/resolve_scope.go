// Package access contains the capability and ledger-scope resolution logic.
package access

import (
	"github.com/construction-tracker/backend/internal/domain/entity"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// capabilities is the closed role-to-capability table. Roles outside the
// table (including an empty role) fall back to read-only behavior.
var capabilities = map[entity.Role]struct {
	write bool
}{
	entity.RoleAdmin:      {write: true},
	entity.RoleAccountant: {write: true},
	entity.RoleViewer:     {write: false},
}

// ResolveScope maps an authenticated actor to its access scope. The result
// is computed once per request and carried on the request context; nothing
// downstream inspects role names again.
//
// The root operator bypasses the capability table entirely: full ledger
// visibility, write access and user management. Every other actor sees only
// expense rows it created.
func ResolveScope(user *entity.User) valueobject.AccessScope {
	scope := valueobject.AccessScope{
		ActorID:  user.ID,
		Username: user.Username,
		CanRead:  true,
	}

	if user.IsRootOperator {
		scope.CanManageUsers = true
		scope.CanWrite = true
		scope.FullLedger = true
		return scope
	}

	if caps, ok := capabilities[user.Role]; ok {
		scope.CanWrite = caps.write
	}

	return scope
}
