package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		hour, min int
		want      string
	}{
		{0, 5, "12:05"},
		{0, 0, "12:00"},
		{13, 7, "1:07"},
		{12, 0, "12:00"},
		{12, 30, "12:30"},
		{23, 59, "11:59"},
		{9, 5, "9:05"},
		{1, 0, "1:00"},
	}
	for _, c := range cases {
		tm := time.Date(2024, time.March, 14, c.hour, c.min, 0, 0, time.Local)
		assert.Equal(t, c.want, Format(tm), "%02d:%02d", c.hour, c.min)
	}
}
