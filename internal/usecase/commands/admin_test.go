//go:build unit

package commands_test

import (
	"context"
	"testing"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/pkg/clock"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (commands.AdminCommands, *fakeRegistrationRepo, string) {
	t.Helper()
	regs := newFakeRegistrationRepo()

	req := registration.Request{
		Name:              "Asha",
		Email:             "asha@example.com",
		WhatsApp:          "+919800000001",
		SelectedEvents:    []int{1},
		SelectedWorkshops: []int{101},
	}
	reg := registration.NewFree("TF2025-ABCD1234", "uid-1", "asha@example.com", req, testNow)
	require.NoError(t, regs.Insert(context.Background(), reg))

	admin := commands.NewAdminCommands(regs, catalog.Default(), clock.NewMockClock(testNow))
	return admin, regs, reg.RegistrationID
}

func TestCheckIn(t *testing.T) {
	t.Run("marks the registrant checked in", func(t *testing.T) {
		admin, _, id := newAdminFixture(t)

		reg, err := admin.CheckIn(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, reg.CheckedIn)
		require.NotNil(t, reg.CheckedInAt)
		assert.Equal(t, testNow, *reg.CheckedInAt)
	})

	t.Run("unknown registration", func(t *testing.T) {
		admin, _, _ := newAdminFixture(t)

		_, err := admin.CheckIn(context.Background(), "TF2025-FFFFFFFF")
		assert.ErrorIs(t, err, errs.ErrRegistrationNotFound)
	})
}

func TestMarkAttendance(t *testing.T) {
	admin, _, id := newAdminFixture(t)

	reg, err := admin.MarkAttendance(context.Background(), id, []int{1}, []int{101})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, reg.AttendedEvents)
	assert.Equal(t, []int{101}, reg.AttendedWorkshops)
}

func TestReassignWorkshop(t *testing.T) {
	t.Run("swaps the workshop in the snapshot", func(t *testing.T) {
		admin, _, id := newAdminFixture(t)

		reg, err := admin.ReassignWorkshop(context.Background(), id, 101, 103)
		require.NoError(t, err)
		assert.Equal(t, []int{103}, reg.Request.SelectedWorkshops)
	})

	t.Run("target workshop must exist", func(t *testing.T) {
		admin, _, id := newAdminFixture(t)

		_, err := admin.ReassignWorkshop(context.Background(), id, 101, 999)
		assert.ErrorIs(t, err, errs.ErrWorkshopNotFound)
	})

	t.Run("source workshop must be selected", func(t *testing.T) {
		admin, _, id := newAdminFixture(t)

		_, err := admin.ReassignWorkshop(context.Background(), id, 104, 103)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestUpdateNotes(t *testing.T) {
	admin, _, id := newAdminFixture(t)

	reg, err := admin.UpdateNotes(context.Background(), id, "paid cash for non-tech at desk", true)
	require.NoError(t, err)
	assert.Equal(t, "paid cash for non-tech at desk", reg.Notes)
	assert.True(t, reg.Flagged)
}
