package linerange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tint/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    LineRange
		wantErr bool
	}{
		{input: "40:50", want: LineRange{40, 50}},
		{input: "40:", want: LineRange{40, math.MaxInt}},
		{input: ":50", want: LineRange{1, 50}},
		{input: "7", want: LineRange{7, 7}},
		{input: " 3:4 ", want: LineRange{3, 4}},
		{input: ":", wantErr: true},
		{input: "", wantErr: true},
		{input: "a:5", wantErr: true},
		{input: "0:5", wantErr: true},
		{input: "1:2:3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsKind(err, errors.ErrParse), "kind = %s", errors.GetKind(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	ranges, err := ParseAll([]string{"2:3", "6:7"})
	require.NoError(t, err)

	assert.Equal(t, BeforeOrBetween, ranges.Check(1))
	assert.Equal(t, InRange, ranges.Check(2))
	assert.Equal(t, InRange, ranges.Check(3))
	assert.Equal(t, BeforeOrBetween, ranges.Check(4))
	assert.Equal(t, InRange, ranges.Check(7))
	assert.Equal(t, AfterLastRange, ranges.Check(8))

	var none LineRanges
	assert.Equal(t, InRange, none.Check(1000))
}

func TestParseAllError(t *testing.T) {
	_, err := ParseAll([]string{"1:2", "x"})
	assert.Error(t, err)
}
