package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympoint/backoffice/internal/app/service/policy"
)

func TestPlanInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      PlanInput
		wantErr error
	}{
		{name: "valid", in: PlanInput{Title: "Gold", DurationMonths: 3, PriceCents: 10000}},
		{name: "zero duration", in: PlanInput{Title: "Gold", DurationMonths: 0, PriceCents: 10000}, wantErr: policy.ErrInvalidPlan},
		{name: "negative duration", in: PlanInput{Title: "Gold", DurationMonths: -1, PriceCents: 10000}, wantErr: policy.ErrInvalidPlan},
		{name: "zero price", in: PlanInput{Title: "Gold", DurationMonths: 3, PriceCents: 0}, wantErr: policy.ErrInvalidPlan},
		{name: "blank title", in: PlanInput{Title: "  ", DurationMonths: 3, PriceCents: 10000}, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.validate()
			if tt.name == "blank title" {
				require.Error(t, err)
				return
			}
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStudentInput_Validate(t *testing.T) {
	require.NoError(t, (&StudentInput{Name: "Ana", Email: "ana@example.com"}).validate())
	require.Error(t, (&StudentInput{Name: "", Email: "ana@example.com"}).validate())
	require.Error(t, (&StudentInput{Name: "Ana", Email: "   "}).validate())
}
