package pgtx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	pgx.Tx
}

type stubDB struct {
	DBTX
}

func TestConn(t *testing.T) {
	db := &stubDB{}
	tx := &stubTx{}

	testCases := []struct {
		name     string
		ctx      context.Context
		expected DBTX
	}{
		{
			name:     "no_transaction_uses_db",
			ctx:      context.Background(),
			expected: db,
		},
		{
			name:     "context_transaction_wins",
			ctx:      ContextWithTx(context.Background(), tx),
			expected: tx,
		},
		{
			name:     "nil_transaction_is_ignored",
			ctx:      ContextWithTx(context.Background(), nil),
			expected: db,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.expected, Conn(tc.ctx, db))
		})
	}
}

func TestTxFromContext(t *testing.T) {
	_, ok := TxFromContext(context.Background())
	assert.False(t, ok)

	tx := &stubTx{}
	got, ok := TxFromContext(ContextWithTx(context.Background(), tx))
	assert.True(t, ok)
	assert.Same(t, tx, got)
}

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, id, FromUUID(UUID(id)))
	assert.Equal(t, uuid.Nil, FromUUID(NullableUUID(nil)))
	assert.Nil(t, FromNullableUUID(NullableUUID(nil)))
	assert.Equal(t, id, *FromNullableUUID(NullableUUID(&id)))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.False(t, IsUniqueViolation(pgx.ErrNoRows))
}
