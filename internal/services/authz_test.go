package services

import (
	"testing"

	"fleetops/internal/models"
	"fleetops/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	allActions := []Action{
		ActionView, ActionCreate, ActionEdit, ActionUpdateStatus,
		ActionDelete, ActionManageFleet, ActionGenerateReport,
	}

	t.Run("administrator may do anything", func(t *testing.T) {
		for _, action := range allActions {
			assert.NoError(t, Authorize(adminActor, "", action), "action %s", action)
			assert.NoError(t, Authorize(adminActor, "someone-else", action), "action %s", action)
		}
	})

	t.Run("operator", func(t *testing.T) {
		denied := map[Action]bool{
			ActionDelete:         true,
			ActionManageFleet:    true,
			ActionGenerateReport: true,
		}
		for _, action := range allActions {
			err := Authorize(operatorActor, "", action)
			if denied[action] {
				assert.ErrorIs(t, err, utils.ErrForbidden, "action %s", action)
			} else {
				assert.NoError(t, err, "action %s", action)
			}
		}
	})

	t.Run("driver on own records", func(t *testing.T) {
		allowed := map[Action]bool{
			ActionView:         true,
			ActionCreate:       true,
			ActionUpdateStatus: true,
		}
		for _, action := range allActions {
			err := Authorize(driverActor, driverActor.ID, action)
			if allowed[action] {
				assert.NoError(t, err, "action %s", action)
			} else {
				assert.ErrorIs(t, err, utils.ErrForbidden, "action %s", action)
			}
		}
	})

	t.Run("driver on foreign or unowned records", func(t *testing.T) {
		for _, action := range allActions {
			assert.ErrorIs(t, Authorize(driverActor, "driver-2", action), utils.ErrForbidden, "action %s", action)
			assert.ErrorIs(t, Authorize(driverActor, "", action), utils.ErrForbidden, "action %s", action)
		}
	})

	t.Run("unknown role is denied", func(t *testing.T) {
		intruder := models.Actor{ID: "x", Role: "auditor"}
		assert.ErrorIs(t, Authorize(intruder, "", ActionView), utils.ErrForbidden)
	})
}
