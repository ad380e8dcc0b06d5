package app

import (
	"fmt"
	"sort"

	"quiz-racer/internal/domain"
)

var competitorNames = []string{"SpeedRacer", "QuizMaster", "BrainStorm", "SwiftMind"}

// NewCompetitors lines up n synthetic racers at distance zero.
func NewCompetitors(n int) []domain.Competitor {
	out := make([]domain.Competitor, 0, n)
	for i := 0; i < n; i++ {
		name := competitorNames[i%len(competitorNames)]
		if i >= len(competitorNames) {
			name = fmt.Sprintf("%s %d", name, i/len(competitorNames)+1)
		}
		out = append(out, domain.Competitor{ID: fmt.Sprintf("comp-%d", i), Name: name})
	}
	return out
}

// AdvanceCompetitors moves every competitor by a random share (0.5 to 1.3) of
// the base distance, never past the finish line.
func AdvanceCompetitors(competitors []domain.Competitor, rules Rules, rnd Random) {
	base := rules.BaseDistance()
	limit := float64(rules.MaxDistance)
	for i := range competitors {
		skill := rnd.Float64()*0.8 + 0.5
		competitors[i].Distance = min(competitors[i].Distance+base*skill, limit)
	}
}

// RankOf returns the 1-based race position of the player. The player is
// inserted ahead of the competitors and the sort is stable, so ties go to the player.
func RankOf(player float64, competitors []float64) int {
	type racer struct {
		distance float64
		player   bool
	}
	field := make([]racer, 0, len(competitors)+1)
	field = append(field, racer{distance: player, player: true})
	for _, d := range competitors {
		field = append(field, racer{distance: d})
	}
	sort.SliceStable(field, func(i, j int) bool {
		return field[i].distance > field[j].distance
	})
	for i, r := range field {
		if r.player {
			return i + 1
		}
	}
	return len(field)
}

func competitorDistances(competitors []domain.Competitor) []float64 {
	out := make([]float64, len(competitors))
	for i, c := range competitors {
		out[i] = c.Distance
	}
	return out
}
