package expiry_test

import (
	"testing"
	"time"

	"github.com/lmd-code/webstore/expiry"
	"github.com/shoenig/test/must"
)

var base = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []expiry.Token
	}{
		{
			name:  "single token",
			input: "1y",
			want:  []expiry.Token{{Magnitude: 1, Unit: expiry.Year}},
		},
		{
			name:  "multiple tokens keep order",
			input: "1y 6m 12h",
			want: []expiry.Token{
				{Magnitude: 1, Unit: expiry.Year},
				{Magnitude: 6, Unit: expiry.Month},
				{Magnitude: 12, Unit: expiry.Hour},
			},
		},
		{
			name:  "minute beats month",
			input: "30mi",
			want:  []expiry.Token{{Magnitude: 30, Unit: expiry.Minute}},
		},
		{
			name:  "case insensitive",
			input: "2W 5MI",
			want: []expiry.Token{
				{Magnitude: 2, Unit: expiry.Week},
				{Magnitude: 5, Unit: expiry.Minute},
			},
		},
		{
			name:  "unknown units dropped",
			input: "3x 4d 9zz",
			want:  []expiry.Token{{Magnitude: 4, Unit: expiry.Day}},
		},
		{
			name:  "garbage fields dropped",
			input: "soon 12 h 5s",
			want:  []expiry.Token{{Magnitude: 5, Unit: expiry.Second}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			must.Eq(t, tc.want, expiry.Parse(tc.input))
		})
	}
}

func TestAdd(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "year month hour",
			input: "1y 6m 12h",
			want:  time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "thirty minutes",
			input: "30mi",
			want:  base.Add(30 * time.Minute),
		},
		{
			name:  "two weeks is fourteen days",
			input: "2w",
			want:  base.Add(14 * 24 * time.Hour),
		},
		{
			name:  "empty falls back to one year",
			input: "",
			want:  time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unparseable falls back to one year",
			input: "whenever",
			want:  time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			must.Eq(t, tc.want, expiry.Add(base, expiry.Parse(tc.input)))
		})
	}
}

func TestAdd_month_end_normalization(t *testing.T) {
	jan31 := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := expiry.Add(jan31, expiry.Parse("1m"))
	// AddDate normalizes Feb 31 forward into March.
	must.Eq(t, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestExpiration_modes(t *testing.T) {
	now := base

	_, ok := expiry.Session().Time(now)
	must.False(t, ok)

	var zero expiry.Expiration
	_, ok = zero.Time(now)
	must.False(t, ok)

	explicit := time.Date(2030, time.June, 1, 8, 30, 0, 0, time.UTC)
	got, ok := expiry.At(explicit).Time(now)
	must.True(t, ok)
	must.Eq(t, explicit, got)

	got, ok = expiry.In("2w").Time(now)
	must.True(t, ok)
	must.Eq(t, now.Add(14*24*time.Hour), got)

	got, ok = expiry.In("").Time(now)
	must.True(t, ok)
	must.Eq(t, now.AddDate(1, 0, 0), got)
}
