package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClasses(t *testing.T) {
	driverErr := errors.New("FOREIGN KEY constraint failed")

	tests := []struct {
		name  string
		err   error
		class error
		user  bool
	}{
		{"validation", &ValidationError{Column: "name", Message: "value is required"}, ErrValidation, true},
		{"integrity", &IntegrityError{Table: "StudGroup", Op: "insert", Err: driverErr}, ErrIntegrity, true},
		{"not found", &NotFoundError{Kind: "table", Name: "Nope"}, ErrNotFound, true},
		{"store", &StoreError{Op: "open", Err: driverErr}, ErrStore, false},
		{"wrapped validation", fmt.Errorf("save: %w", &ValidationError{Message: "x"}), ErrValidation, true},
		{"disabled", ErrCommandDisabled, ErrCommandDisabled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.class)
			assert.Equal(t, tt.user, IsUserError(tt.err))
		})
	}
}

func TestIntegrityErrorUnwrap(t *testing.T) {
	driverErr := errors.New("constraint failed")
	err := &IntegrityError{Table: "Student", Op: "delete", Err: driverErr}
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, "delete Student: constraint failed", err.Error())
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "office: not an integer", (&ValidationError{Column: "office", Message: "not an integer"}).Error())
	assert.Equal(t, "row mismatch", (&ValidationError{Message: "row mismatch"}).Error())
}
