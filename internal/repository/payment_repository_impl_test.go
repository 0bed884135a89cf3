package repository

import (
	"testing"

	"clinic-data-store/internal/domain/entity"
	"clinic-data-store/pkg/dberr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentCreate_NegativeAmount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository()

	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23514",
			ConstraintName: "payments_amount_check",
			TableName:      "payments",
		})

	err := repo.Create(db, &entity.Payment{
		PatientID: uuid.New(),
		Amount:    decimal.NewFromInt(-500),
		Currency:  entity.DefaultCurrency,
		Method:    entity.PaymentMethodMpesa,
		Status:    entity.PaymentStatusPending,
	})

	require.Error(t, err)
	assert.True(t, dberr.IsCheck(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCreate_DuplicateTransactionRef(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository()

	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "payments_transaction_ref_key",
			TableName:      "payments",
		})

	ref := "ISL-2025-000123"
	err := repo.Create(db, &entity.Payment{
		PatientID:      uuid.New(),
		Amount:         decimal.NewFromInt(2500),
		Currency:       entity.DefaultCurrency,
		Method:         entity.PaymentMethodIntaSend,
		Status:         entity.PaymentStatusPending,
		TransactionRef: &ref,
	})

	require.Error(t, err)
	assert.True(t, dberr.IsUnique(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentFindByTransactionRef(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository()

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "amount", "currency", "method", "status", "transaction_ref"}).
		AddRow(id, "2500.00", "KES", "M-PESA", "COMPLETED", "ISL-2025-000123")

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE transaction_ref = \$1`).
		WithArgs("ISL-2025-000123", 1).
		WillReturnRows(rows)

	payment, err := repo.FindByTransactionRef(db, "ISL-2025-000123")
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, id, payment.ID)
	assert.Equal(t, entity.PaymentMethodMpesa, payment.Method)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(2500)))

	assert.NoError(t, mock.ExpectationsWereMet())
}
