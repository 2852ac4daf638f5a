package services

import (
	"fmt"

	"fleetops/internal/models"
	"fleetops/internal/utils"
)

// Action names an operation checked by the authorization policy.
type Action string

const (
	ActionView           Action = "view"
	ActionCreate         Action = "create"
	ActionEdit           Action = "edit"
	ActionUpdateStatus   Action = "update_status"
	ActionDelete         Action = "delete"
	ActionManageFleet    Action = "manage_fleet"
	ActionGenerateReport Action = "generate_report"
)

// Authorize is the single authorization policy for the whole service layer.
// Administrators may do anything. Operators may do anything except deletes,
// fleet management (vehicle and maintenance mutations) and report generation.
// Drivers may view, create and update the status of records they own, where
// ownership is the record's driver id; everything else is denied.
//
// resourceOwnerID is the driver id attached to the record, or empty for
// records with no owner.
func Authorize(actor models.Actor, resourceOwnerID string, action Action) error {
	switch actor.Role {
	case models.RoleAdministrator:
		return nil

	case models.RoleOperator:
		switch action {
		case ActionDelete, ActionManageFleet, ActionGenerateReport:
			return fmt.Errorf("operator may not %s: %w", action, utils.ErrForbidden)
		}
		return nil

	case models.RoleDriver:
		switch action {
		case ActionView, ActionCreate, ActionUpdateStatus:
			if resourceOwnerID == "" || resourceOwnerID != actor.ID {
				return fmt.Errorf("driver %s does not own this record: %w", actor.ID, utils.ErrForbidden)
			}
			return nil
		}
		return fmt.Errorf("driver may not %s: %w", action, utils.ErrForbidden)
	}

	return fmt.Errorf("unknown role %q: %w", actor.Role, utils.ErrForbidden)
}
