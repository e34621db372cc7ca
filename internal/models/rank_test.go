package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		invites int
		want    Rank
	}{
		{0, RankExplorer},
		{1, RankExplorer},
		{14, RankExplorer},
		{15, RankTrailblazer},
		{49, RankTrailblazer},
		{50, RankAmbassador},
		{1000, RankAmbassador},
		{-3, RankExplorer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RankFor(tt.invites), "invites=%d", tt.invites)
	}
}

func TestRankForIsMonotonic(t *testing.T) {
	order := map[Rank]int{RankExplorer: 0, RankTrailblazer: 1, RankAmbassador: 2}

	prev := RankFor(0)
	for n := 1; n <= 200; n++ {
		cur := RankFor(n)
		assert.GreaterOrEqual(t, order[cur], order[prev], "rank regressed at %d invites", n)
		prev = cur
	}
}

func TestProgressFor(t *testing.T) {
	p := ProgressFor(3)
	assert.Equal(t, 3, p.Current)
	assert.Equal(t, 15, p.Next)
	assert.Equal(t, 20.0, p.Percentage)

	p = ProgressFor(15)
	assert.Equal(t, 50, p.Next)
	assert.Equal(t, 30.0, p.Percentage)

	p = ProgressFor(7)
	assert.Equal(t, 46.67, p.Percentage)

	p = ProgressFor(75)
	assert.Equal(t, 50, p.Next)
	assert.Equal(t, 100.0, p.Percentage)
}
