package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	require.True(t, IsDuplicateConstraintError(dup, "students_email_key"))
	require.False(t, IsDuplicateConstraintError(dup, "students_roll_number_key"))
	require.True(t, IsDuplicateConstraintError(fmt.Errorf("insert failed: %w", dup), "students_email_key"))
	require.False(t, IsDuplicateConstraintError(errors.New("boom"), "students_email_key"))
	require.False(t, IsDuplicateConstraintError(nil, "students_email_key"))
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	require.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
