package models

import (
	"github.com/shopspring/decimal"
)

// Rank is a tier label derived from cumulative invite count
type Rank string

const (
	RankExplorer    Rank = "Explorer"
	RankTrailblazer Rank = "Trailblazer"
	RankAmbassador  Rank = "Ambassador"
)

// Invite thresholds at which each rank starts
const (
	TrailblazerInvites = 15
	AmbassadorInvites  = 50
)

// RankFor maps a cumulative invite count to its rank.
// Rank is always derived from the current count, never stored independently.
func RankFor(totalInvites int) Rank {
	switch {
	case totalInvites >= AmbassadorInvites:
		return RankAmbassador
	case totalInvites >= TrailblazerInvites:
		return RankTrailblazer
	default:
		return RankExplorer
	}
}

// RankProgress describes how far a user is towards the next rank threshold
type RankProgress struct {
	Current    int     `json:"current"`
	Next       int     `json:"next"`
	Percentage float64 `json:"percentage"`
}

// ProgressFor reports progress towards the next rank threshold.
// Ambassadors have no further tier and report 100%.
func ProgressFor(totalInvites int) RankProgress {
	if totalInvites < 0 {
		totalInvites = 0
	}

	if totalInvites >= AmbassadorInvites {
		return RankProgress{
			Current:    totalInvites,
			Next:       AmbassadorInvites,
			Percentage: 100,
		}
	}

	next := TrailblazerInvites
	if totalInvites >= TrailblazerInvites {
		next = AmbassadorInvites
	}

	pct := decimal.NewFromInt(int64(totalInvites)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(next))).
		Round(2)

	return RankProgress{
		Current:    totalInvites,
		Next:       next,
		Percentage: pct.InexactFloat64(),
	}
}
