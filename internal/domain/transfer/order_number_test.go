package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/transfer"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "OT-001", transfer.FormatOrderNumber(1))
	assert.Equal(t, "OT-042", transfer.FormatOrderNumber(42))
	assert.Equal(t, "OT-999", transfer.FormatOrderNumber(999))
	assert.Equal(t, "OT-1000", transfer.FormatOrderNumber(1000),
		"por encima de 999 el consecutivo no se trunca")
}

func TestParseOrderNumber_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 7, 99, 100, 999, 1234} {
		got, err := transfer.ParseOrderNumber(transfer.FormatOrderNumber(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestParseOrderNumber_Invalidos(t *testing.T) {
	for _, s := range []string{"", "OT-", "OT-1", "OT-01", "XX-001", "OT-abc", "ot-001"} {
		_, err := transfer.ParseOrderNumber(s)
		assert.Error(t, err, "debe rechazar %q", s)
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, transfer.CanTransition(entity.TransferStatusPending, entity.TransferStatusApproved))
	assert.True(t, transfer.CanTransition(entity.TransferStatusPending, entity.TransferStatusRejected))

	// Estados terminales: ninguna transición posterior es legal.
	assert.False(t, transfer.CanTransition(entity.TransferStatusApproved, entity.TransferStatusRejected))
	assert.False(t, transfer.CanTransition(entity.TransferStatusRejected, entity.TransferStatusApproved))
	assert.False(t, transfer.CanTransition(entity.TransferStatusApproved, entity.TransferStatusApproved))

	// pending no puede "decidirse" a pending ni a estados desconocidos.
	assert.False(t, transfer.CanTransition(entity.TransferStatusPending, entity.TransferStatusPending))
	assert.False(t, transfer.CanTransition(entity.TransferStatusPending, "cancelled"))
}
