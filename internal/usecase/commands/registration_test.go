//go:build unit

package commands_test

import (
	"context"
	"testing"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/pkg/clock"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase"
	"techfest-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistrationCommands(regs *fakeRegistrationRepo) commands.RegistrationCommands {
	ledger := commands.NewLedger(newFakeOrderRepo(), regs, &fakeNotifier{}, clock.NewMockClock(testNow))
	return commands.NewRegistrationCommands(regs, ledger, catalog.Default())
}

func TestSubmit(t *testing.T) {
	t.Run("free selection commits directly", func(t *testing.T) {
		regs := newFakeRegistrationRepo()
		cmds := newRegistrationCommands(regs)

		result, err := cmds.Submit(context.Background(), caller, freeRequestOnly())
		require.NoError(t, err)
		assert.False(t, result.RequiresPayment)
		require.NotNil(t, result.Registration)
		assert.Equal(t, registration.PaymentNotRequired, result.Registration.PaymentStatus)
		assert.Len(t, regs.regs, 1)
	})

	t.Run("priced selection requires payment", func(t *testing.T) {
		regs := newFakeRegistrationRepo()
		cmds := newRegistrationCommands(regs)

		result, err := cmds.Submit(context.Background(), caller, paidRequest())
		require.NoError(t, err)
		assert.True(t, result.RequiresPayment)
		assert.Equal(t, 198, result.Amount)
		assert.Equal(t, "INR", result.Currency)
		assert.Nil(t, result.Registration)
		assert.Empty(t, regs.regs)
	})

	t.Run("institutional discount applies to the quoted amount", func(t *testing.T) {
		cmds := newRegistrationCommands(newFakeRegistrationRepo())
		citCaller := usecase.Caller{UID: "uid-9", Email: "ravi@citchennai.net"}
		req := paidRequest()
		req.Email = "ravi@citchennai.net"

		result, err := cmds.Submit(context.Background(), citCaller, req)
		require.NoError(t, err)
		assert.True(t, result.RequiresPayment)
		assert.Equal(t, 118, result.Amount)
	})

	t.Run("duplicate free submission is rejected", func(t *testing.T) {
		regs := newFakeRegistrationRepo()
		cmds := newRegistrationCommands(regs)

		_, err := cmds.Submit(context.Background(), caller, freeRequestOnly())
		require.NoError(t, err)

		_, err = cmds.Submit(context.Background(), caller, freeRequestOnly())
		assert.ErrorIs(t, err, errs.ErrDuplicateRegistration)
	})

	t.Run("cross-user submission is forbidden", func(t *testing.T) {
		cmds := newRegistrationCommands(newFakeRegistrationRepo())
		req := freeRequestOnly()
		req.Email = "mallory@example.com"

		_, err := cmds.Submit(context.Background(), caller, req)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestCheckDuplicate(t *testing.T) {
	t.Run("reports which fields collide", func(t *testing.T) {
		regs := newFakeRegistrationRepo()
		cmds := newRegistrationCommands(regs)

		_, err := cmds.Submit(context.Background(), caller, freeRequestOnly())
		require.NoError(t, err)

		result, err := cmds.CheckDuplicate(context.Background(), "ASHA@example.com", "+911112223334")
		require.NoError(t, err)
		assert.True(t, result.Exists)
		assert.Equal(t, []string{"email"}, result.DuplicateFields)
	})

	t.Run("no collision", func(t *testing.T) {
		cmds := newRegistrationCommands(newFakeRegistrationRepo())

		result, err := cmds.CheckDuplicate(context.Background(), "new@example.com", "+911112223334")
		require.NoError(t, err)
		assert.False(t, result.Exists)
		assert.Empty(t, result.DuplicateFields)
	})

	t.Run("both fields are required", func(t *testing.T) {
		cmds := newRegistrationCommands(newFakeRegistrationRepo())

		_, err := cmds.CheckDuplicate(context.Background(), "new@example.com", "")
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		_, err = cmds.CheckDuplicate(context.Background(), "", "+911112223334")
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}
