package advance

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/clock"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/validator"
	"github.com/sitewage/sitewage-backend-go/internal/repository/memory"
)

const testToday = "2024-05-10"

func authedContext(t *testing.T) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"supervisor_id": "sup-1"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRecordAdvance_AppendOnly(t *testing.T) {
	store := memory.NewStore()
	svc := NewAdvanceService(store.Advances(), clock.Fixed{Date: testToday})
	ctx := authedContext(t)

	// Two advances on the same day accumulate instead of replacing each
	// other, unlike overtime.
	for i := 0; i < 2; i++ {
		_, err := svc.RecordAdvance(ctx, advance.RecordAdvanceRequest{
			LabourerID: "lab-1", Date: "2024-05-09", Amount: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	rows, err := svc.ListAdvances(context.Background(), advance.AdvanceFilter{
		StartDate: "2024-05-01", EndDate: "2024-05-31",
	})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRecordAdvance_FutureDateRejected(t *testing.T) {
	store := memory.NewStore()
	svc := NewAdvanceService(store.Advances(), clock.Fixed{Date: testToday})

	_, err := svc.RecordAdvance(authedContext(t), advance.RecordAdvanceRequest{
		LabourerID: "lab-1", Date: "2024-05-11", Amount: decimal.NewFromInt(100),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestRecordAdvance_RejectsNonPositiveAmount(t *testing.T) {
	store := memory.NewStore()
	svc := NewAdvanceService(store.Advances(), clock.Fixed{Date: testToday})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		_, err := svc.RecordAdvance(authedContext(t), advance.RecordAdvanceRequest{
			LabourerID: "lab-1", Date: testToday, Amount: amount,
		})

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "amount")
	}
}
