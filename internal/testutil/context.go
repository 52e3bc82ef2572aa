package testutil

import (
	"context"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
)

// DefaultAccountID is the account seeded by most service tests
const DefaultAccountID = "acc_test_01"

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetAccountID(ctx, DefaultAccountID)
	ctx = types.SetRequestID(ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST))
	return ctx
}
