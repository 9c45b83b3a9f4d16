package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_lower_key"}, "insert")
	foreign := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}
	other := errors.New("connection refused")

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreign))
	assert.False(t, isUniqueConstraintViolation(other))

	assert.True(t, isForeignKeyConstraintViolation(foreign))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(other))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(unique))
}
