package times

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	parsed, err := ParseDay("2021-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDay("15/03/2021")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "already normalized",
			input: "2021-01-02",
			want:  "2021-01-02",
			ok:    true,
		},
		{
			name:  "invalid layout",
			input: "01-02-2021",
			want:  "",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			want:  "",
			ok:    false,
		},
		{
			name:  "nonsense date",
			input: "2021-13-45",
			want:  "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDay(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "2020-12-01", FormatDay(time.Date(2020, time.December, 1, 13, 45, 0, 0, time.UTC)))
}
