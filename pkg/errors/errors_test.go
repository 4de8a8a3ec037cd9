package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserFacing(t *testing.T) {
	assert.True(t, IsUserFacing(ErrNothingToDelete))
	assert.True(t, IsUserFacing(fmt.Errorf("удаление предприятия: %w", ErrNothingToDelete)))
	assert.True(t, IsUserFacing(ErrNothingToUpdate))
	assert.True(t, IsUserFacing(ErrEnterpriseHasInspections))

	assert.False(t, IsUserFacing(nil))
	assert.False(t, IsUserFacing(fmt.Errorf("connection refused")))
	assert.False(t, IsUserFacing(ErrConfig))
}

func TestInvalidConfigError_UnwrapsToErrConfig(t *testing.T) {
	err := NewInvalidConfigError("connection_strings.InspectionsDb", "строка подключения пуста")

	assert.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, "connection_strings.InspectionsDb: строка подключения пуста", err.Error())
}
