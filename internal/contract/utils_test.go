package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorBandLabelKeepsText(t *testing.T) {
	// Color codes vary with terminal support; the label text always survives.
	for _, rank := range []int{1, 5, 10, 25, 50, 90, 999} {
		assert.Contains(t, ColorBandLabel("Elite (top 5%)", rank), "Elite (top 5%)")
	}
}

func TestColorPlaceKeepsNumber(t *testing.T) {
	assert.Contains(t, ColorPlace(1), "1")
	assert.Contains(t, ColorPlace(2), "2")
	assert.Equal(t, "7", ColorPlace(7))
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", 20))
	assert.Equal(t, "a long lifter...", TruncateName("a long lifter name here", 16))
	// Width too small to truncate safely leaves the name alone.
	assert.Equal(t, "abcdef", TruncateName("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := ParseBoolString(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
		} else {
			assert.NoError(t, err, tt.input)
			assert.Equal(t, tt.expected, got, tt.input)
		}
	}
}
