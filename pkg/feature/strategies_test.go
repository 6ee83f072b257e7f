package feature_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrEshboboyev/api-versioning/pkg/feature"
)

// Test helper context keys
type (
	testUserIDKey     struct{}
	testUserGroupsKey struct{}
)

func testUserIDExtractor(ctx context.Context) string {
	userID, _ := ctx.Value(testUserIDKey{}).(string)
	return userID
}

func testUserGroupsExtractor(ctx context.Context) []string {
	groups, _ := ctx.Value(testUserGroupsKey{}).([]string)
	return groups
}

func userCtx(userID string, groups ...string) context.Context {
	ctx := context.WithValue(context.Background(), testUserIDKey{}, userID)
	if len(groups) > 0 {
		ctx = context.WithValue(ctx, testUserGroupsKey{}, groups)
	}
	return ctx
}

func intPtr(v int) *int { return &v }

func TestAlwaysStrategy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("AlwaysOn", func(t *testing.T) {
		t.Parallel()
		enabled, err := feature.NewAlwaysOnStrategy().Evaluate(ctx)
		require.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("AlwaysOff", func(t *testing.T) {
		t.Parallel()
		enabled, err := feature.NewAlwaysOffStrategy().Evaluate(ctx)
		require.NoError(t, err)
		assert.False(t, enabled)
	})
}

func TestTargetedStrategy(t *testing.T) {
	t.Parallel()

	t.Run("EmptyCriteria", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(feature.TargetCriteria{})
		enabled, err := strategy.Evaluate(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, feature.ErrInvalidStrategy)
		assert.False(t, enabled)
	})

	t.Run("SpecificUserIDs", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{UserIDs: []string{"user1", "user2"}},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)

		enabled, err := strategy.Evaluate(userCtx("user2"))
		require.NoError(t, err)
		assert.True(t, enabled)

		enabled, err = strategy.Evaluate(userCtx("user9"))
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("Groups", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{Groups: []string{"beta-testers"}},
			feature.WithUserIDExtractor(testUserIDExtractor),
			feature.WithUserGroupsExtractor(testUserGroupsExtractor),
		)

		enabled, err := strategy.Evaluate(userCtx("user1", "beta-testers", "qa"))
		require.NoError(t, err)
		assert.True(t, enabled)

		enabled, err = strategy.Evaluate(userCtx("user1", "customers"))
		require.NoError(t, err)
		assert.False(t, enabled)

		enabled, err = strategy.Evaluate(userCtx("user1"))
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("DenyListWins", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{
				AllowList: []string{"user1"},
				DenyList:  []string{"user1"},
			},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)

		enabled, err := strategy.Evaluate(userCtx("user1"))
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("DenyListFailsSafeForAnonymous", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{DenyList: []string{"user1"}},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)

		enabled, err := strategy.Evaluate(context.Background())
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("PercentageBoundaries", func(t *testing.T) {
		t.Parallel()

		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{Percentage: intPtr(0)},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)
		enabled, err := strategy.Evaluate(userCtx("user1"))
		require.NoError(t, err)
		assert.False(t, enabled)

		strategy = feature.NewTargetedStrategy(
			feature.TargetCriteria{Percentage: intPtr(100)},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)
		enabled, err = strategy.Evaluate(userCtx("user1"))
		require.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("PercentageIsDeterministicPerUser", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{Percentage: intPtr(50)},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)

		first, err := strategy.Evaluate(userCtx("user42"))
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := strategy.Evaluate(userCtx("user42"))
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("PercentageRequiresUserID", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{Percentage: intPtr(99)},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)

		enabled, err := strategy.Evaluate(context.Background())
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("PercentageOutOfRange", func(t *testing.T) {
		t.Parallel()
		strategy := feature.NewTargetedStrategy(
			feature.TargetCriteria{Percentage: intPtr(101)},
			feature.WithUserIDExtractor(testUserIDExtractor),
		)

		enabled, err := strategy.Evaluate(userCtx("user1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, feature.ErrInvalidStrategy)
		assert.False(t, enabled)
	})
}
