package conflict

import (
	"testing"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDateOrder(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"single day", "2024-06-03", "2024-06-03", false},
		{"ordered", "2024-06-03", "2024-06-07", false},
		{"three calendar years", "2024-01-01", "2026-12-31", false},
		{"reversed", "2024-06-07", "2024-06-03", true},
		{"past the cap", "2024-01-01", "2027-01-03", true},
		{"open ended", "2024-01-01", "9999-12-31", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := CheckDateOrder("end_date", tt.start, tt.end)
			if !tt.wantErr {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "end_date", errs[0].Field)
		})
	}
}

func TestValidateSickLeaveRequest_RangeCap(t *testing.T) {
	end := "9999-12-31"
	req := ValidateSickLeaveRequest{EmployeeID: "emp-1", StartDate: "2024-01-01", EndDate: &end}

	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "end_date", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, "within 1098 days")

	end = "2024-01-05"
	assert.NoError(t, req.Validate())
}
