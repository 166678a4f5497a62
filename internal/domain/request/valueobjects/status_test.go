package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Lanes() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, Status("OPEN").IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("new").IsValid(), "statuses are uppercase")
}

func TestStatus_PromotesOnAssign(t *testing.T) {
	assert.True(t, StatusNew.PromotesOnAssign())
	assert.True(t, StatusTriage.PromotesOnAssign())

	for _, s := range []Status{StatusAssigned, StatusInProgress, StatusBlocked, StatusReview, StatusDone, StatusCancelled} {
		assert.False(t, s.PromotesOnAssign(), s.String())
	}
}

func TestParseStatusList(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		want    []Status
		wantErr bool
	}{
		{name: "empty", csv: "", want: nil},
		{name: "single", csv: "NEW", want: []Status{StatusNew}},
		{
			name: "multiple with spaces",
			csv:  "ASSIGNED, IN_PROGRESS",
			want: []Status{StatusAssigned, StatusInProgress},
		},
		{name: "blank segments dropped", csv: ",NEW,,", want: []Status{StatusNew}},
		{name: "unknown status fails", csv: "NEW,BOGUS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatusList(tt.csv)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanes_Order(t *testing.T) {
	lanes := Lanes()
	require.Len(t, lanes, 8)
	assert.Equal(t, StatusNew, lanes[0])
	assert.Equal(t, StatusCancelled, lanes[7])
}
