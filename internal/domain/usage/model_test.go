package usage

import (
	"testing"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/plan"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	catalog := plan.DefaultCatalog()

	basic, err := catalog.Lookup(types.PlanBasic)
	require.NoError(t, err)
	enterprise, err := catalog.Lookup(types.PlanEnterprise)
	require.NoError(t, err)

	tests := []struct {
		name      string
		plan      *plan.Plan
		snap      *Snapshot
		action    types.LimitAction
		allowed   bool
		unlimited bool
	}{
		{
			name:    "below_limit_allows",
			plan:    basic,
			snap:    &Snapshot{BusinessProfiles: 0},
			action:  types.LimitActionCreateBusinessProfile,
			allowed: true,
		},
		{
			name:    "at_limit_blocks_next_unit",
			plan:    basic,
			snap:    &Snapshot{BusinessProfiles: 1},
			action:  types.LimitActionCreateBusinessProfile,
			allowed: false,
		},
		{
			name:    "over_limit_blocks",
			plan:    basic,
			snap:    &Snapshot{MonthlyInvestments: 7},
			action:  types.LimitActionMakeInvestment,
			allowed: false,
		},
		{
			name:      "unlimited_ignores_usage",
			plan:      enterprise,
			snap:      &Snapshot{BusinessProfiles: 1_000_000},
			action:    types.LimitActionCreateBusinessProfile,
			allowed:   true,
			unlimited: true,
		},
		{
			name:    "storage_at_limit_blocks",
			plan:    basic,
			snap:    &Snapshot{StorageGB: 1.0},
			action:  types.LimitActionUploadFile,
			allowed: false,
		},
		{
			name:    "storage_below_limit_allows",
			plan:    basic,
			snap:    &Snapshot{StorageGB: 0.99},
			action:  types.LimitActionUploadFile,
			allowed: true,
		},
		{
			name:      "unmetered_action_allows",
			plan:      basic,
			snap:      &Snapshot{},
			action:    types.LimitActionAPICall,
			allowed:   true,
			unlimited: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(tt.plan, tt.snap, tt.action)
			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, tt.unlimited, decision.Unlimited)
		})
	}
}
