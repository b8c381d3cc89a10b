package shell

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skafara/cmparith"
)

func mustInt(t *testing.T, s string) cmparith.Integer {
	t.Helper()
	x, err := cmparith.New(cmparith.Unlimited, s)
	require.NoError(t, err)
	return x
}

func TestBankPushAndGetMostRecentFirst(t *testing.T) {
	var b Bank
	b.Push(mustInt(t, "1"))
	b.Push(mustInt(t, "2"))
	b.Push(mustInt(t, "3"))

	assert.Equal(t, 3, b.Len())
	v, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
	v, err = b.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
}

func TestBankEvictsOldestPastCapacity(t *testing.T) {
	var b Bank
	for i := 1; i <= bankCapacity+2; i++ {
		b.Push(mustInt(t, strconv.Itoa(i)))
	}
	assert.Equal(t, bankCapacity, b.Len())
	newest, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(bankCapacity+2), newest.String())
	oldest, err := b.Get(bankCapacity)
	require.NoError(t, err)
	assert.Equal(t, "3", oldest.String())
}

func TestBankGetOutOfRangeEmpty(t *testing.T) {
	var b Bank
	_, err := b.Get(9)
	require.Error(t, err)
	var oor *OutOfBankRangeError
	assert.ErrorAs(t, err, &oor)
}

func TestBankGetOutOfRangeAtCapacity(t *testing.T) {
	var b Bank
	for i := 0; i < bankCapacity; i++ {
		b.Push(mustInt(t, "0"))
	}
	_, err := b.Get(9)
	require.Error(t, err)
	var oor *OutOfBankRangeError
	assert.ErrorAs(t, err, &oor)

	_, err = b.Get(bankCapacity)
	assert.NoError(t, err)
}

func TestBankGetZeroIndexRejected(t *testing.T) {
	var b Bank
	b.Push(mustInt(t, "1"))
	_, err := b.Get(0)
	require.Error(t, err)
}
