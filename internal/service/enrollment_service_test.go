package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	require.True(t, isDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	require.True(t, isDuplicateKey(fmt.Errorf("create enrollment: %w", &mysql.MySQLError{Number: 1062})))
	require.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))

	require.False(t, isDuplicateKey(nil))
	require.False(t, isDuplicateKey(errors.New("connection reset")))
	require.False(t, isDuplicateKey(&mysql.MySQLError{Number: 1452}))
}
