// Package policy is the single authorization decision point for the admin
// catalog. Every gateway operation consults Authorize rather than carrying
// its own ad hoc role check, so the rules cannot drift between routes.
package policy

import (
	"fmt"

	"github.com/pixiplay/platform/internal/domain"
)

// Action names an operation on a resource.
type Action string

const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Authorize decides whether the user may perform action on resource. A nil
// user is an authentication failure (401); a live user without the Admin
// role is an authorization failure (403). The two are distinct on the wire.
func Authorize(user *domain.User, action Action, resource string) error {
	if user == nil {
		return domain.ErrUnauthorized("authentication required")
	}
	if !user.IsAdmin() {
		return domain.ErrForbidden(fmt.Sprintf("role %s may not %s %s", user.Role, action, resource))
	}
	return nil
}
