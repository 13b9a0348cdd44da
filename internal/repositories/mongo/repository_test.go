package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/melroseheights/portfolio-backend/internal/models"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// A nil collection proves invalid ids are rejected before any store access:
// touching the collection would panic.
func nilRepo() *documentRepo[models.Skill] {
	return &documentRepo[models.Skill]{col: nil}
}

func TestGetRejectsInvalidIDBeforeStoreAccess(t *testing.T) {
	_, err := nilRepo().Get(context.Background(), "not-an-object-id")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestUpdateRejectsInvalidIDBeforeStoreAccess(t *testing.T) {
	_, err := nilRepo().Update(context.Background(), "zzz", bson.M{"level": 98})
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestDeleteRejectsInvalidIDBeforeStoreAccess(t *testing.T) {
	err := nilRepo().Delete(context.Background(), "")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestParseIDAcceptsValidHex(t *testing.T) {
	oid, err := parseID("test", "507f1f77bcf86cd799439011")
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())
}
