package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "00:00", want: 0, ok: true},
		{input: "07:00", want: 420, ok: true},
		{input: "7:00", want: 420, ok: true},
		{input: "13:45", want: 825, ok: true},
		{input: "23:59", want: 1439, ok: true},
		{input: "24:00", ok: false},
		{input: "12:60", ok: false},
		{input: "10:30xyz", ok: false},
		{input: "7:3", ok: false},
		{input: "07:3", ok: false},
		{input: "0７:30", ok: false},
		{input: "1030", ok: false},
		{input: ":30", ok: false},
		{input: "10:", ok: false},
		{input: "", ok: false},
		{input: "ab:cd", ok: false},
		{input: "-1:30", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
