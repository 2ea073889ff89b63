//go:build unit

package response_test

import (
	"testing"
	"time"

	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/domain/plan"
	resdto "manga-cafe-billing/internal/handler/dto/response"
	"manga-cafe-billing/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPlans(t *testing.T) {
	res, err := resdto.FromPlans(plan.All())
	require.NoError(t, err)
	require.Len(t, res, 4)

	assert.Equal(t, resdto.PlanResponse{
		ID:            "pack_3hour",
		DisplayName:   "3-hour pack (3 hours from check-in)",
		BasePrice:     800,
		IncludedHours: 3,
	}, res[1])
}

func TestFromQuote(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	result, err := fee.NewDefaultCalculator().Calculate(
		time.Date(2025, 6, 4, 21, 0, 0, 0, jst),
		time.Date(2025, 6, 4, 22, 1, 0, 0, jst),
		plan.Regular1Hour,
	)
	require.NoError(t, err)
	id := uuid.New()
	issuedAt := time.Date(2025, 6, 4, 22, 2, 0, 0, jst)

	actual, err := resdto.FromQuote(&usecase.Quote{ID: id, IssuedAt: issuedAt, Result: result})
	require.NoError(t, err)

	expected := &resdto.QuoteResponse{
		ID:       id,
		IssuedAt: "2025-06-04T22:02:00+09:00",
		Plan: resdto.PlanResponse{
			ID:            "regular_1hour",
			DisplayName:   "Regular (1 hour from check-in)",
			BasePrice:     500,
			IncludedHours: 1,
		},
		CheckIn:           "2025-06-04 21:00:00",
		CheckOut:          "2025-06-04 22:01:00",
		ElapsedMinutes:    61,
		IncludedMinutes:   60,
		ExtensionMinutes:  1,
		BaseFee:           500,
		ExtensionFee:      115,
		TotalExcludingTax: 615,
		Tax:               61,
		TotalIncludingTax: 676,
		Blocks: []resdto.BlockResponse{
			{Start: "2025-06-04 22:00:00", End: "2025-06-04 22:01:00", Period: "22:00-22:01", Night: true, Fee: 115},
		},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("QuoteResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBlocks_Empty(t *testing.T) {
	res := resdto.FromBlocks(nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
