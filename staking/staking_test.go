package staking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/log/logtest"
)

func TestSet(t *testing.T) {
	validators := []types.Validator{
		{ID: types.RandomValidatorID(), VoteKey: types.VoteKey{1}},
		{ID: types.RandomValidatorID(), VoteKey: types.VoteKey{2}},
	}
	set, err := NewSet(logtest.New(t), validators)
	require.NoError(t, err)
	require.ErrorIs(t, set.Add(validators[0]), ErrValidatorExists)

	require.True(t, set.IsCurrentMember(validators[0].ID))
	require.False(t, set.IsCurrentMember(types.RandomValidatorID()))
	require.Equal(t, validators, set.LivingValidators())

	set.EscalateMisdemeanor(validators[0].ID)
	set.EscalateMisdemeanor(validators[0].ID)
	status, err := set.Status(validators[0].ID)
	require.NoError(t, err)
	require.Equal(t, Status{Misdemeanors: 2}, status)

	set.EscalateFelony(validators[0].ID)
	require.False(t, set.IsCurrentMember(validators[0].ID))
	require.Equal(t, validators[1:], set.LivingValidators())
	status, err = set.Status(validators[0].ID)
	require.NoError(t, err)
	require.Equal(t, Status{Jailed: true, Misdemeanors: 2, Felonies: 1}, status)

	require.NoError(t, set.Release(validators[0].ID))
	require.True(t, set.IsCurrentMember(validators[0].ID))

	unknown := types.RandomValidatorID()
	set.EscalateFelony(unknown)
	set.EscalateMisdemeanor(unknown)
	_, err = set.Status(unknown)
	require.ErrorIs(t, err, ErrValidatorNotFound)
	require.ErrorIs(t, set.Release(unknown), ErrValidatorNotFound)
}

func TestNewSetDuplicates(t *testing.T) {
	v := types.Validator{ID: types.RandomValidatorID()}
	_, err := NewSet(logtest.New(t), []types.Validator{v, v})
	require.ErrorIs(t, err, ErrValidatorExists)
}

func TestPool(t *testing.T) {
	pool := NewPool(logtest.New(t), 100)
	recipient := types.RandomValidatorID()

	require.NoError(t, pool.Pay(recipient, 30))
	require.NoError(t, pool.Pay(recipient, 20))
	require.Equal(t, types.Amount(50), pool.Balance())
	require.Equal(t, types.Amount(50), pool.Paid(recipient))

	require.ErrorIs(t, pool.Pay(recipient, 51), ErrInsufficientBalance)
	require.Equal(t, types.Amount(50), pool.Balance())

	require.Equal(t, types.Amount(60), pool.Deposit(10))
	require.NoError(t, pool.Pay(recipient, 60))
	require.Zero(t, pool.Balance())
}
