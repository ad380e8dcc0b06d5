package app

import (
	"fmt"
	"math"

	"quiz-racer/internal/domain"
)

// Section is the composition of one block of the session list.
type Section struct {
	Lower  int
	Higher int
}

func (s Section) Size() int { return s.Lower + s.Higher }

// lowerShare is the fraction of lower-band questions per section: a progressive ramp.
var lowerShare = [...]float64{0.7, 0.5, 0.3}

// Ramp splits total into three sections moving from the lower band to the higher one.
// For 30 questions this is 7+3, 5+5, 3+7.
func Ramp(total int) []Section {
	if total <= 0 {
		return nil
	}
	sections := make([]Section, 0, len(lowerShare))
	base, rem := total/len(lowerShare), total%len(lowerShare)
	for i, share := range lowerShare {
		size := base
		if i < rem {
			size++
		}
		lower := int(math.Round(float64(size) * share))
		sections = append(sections, Section{Lower: lower, Higher: size - lower})
	}
	return sections
}

// Bands returns the two adjacent difficulty bands a tier mixes.
func Bands(tier domain.Tier) (lower, higher domain.Difficulty, err error) {
	switch tier {
	case domain.TierYoung:
		return domain.DifficultyEasy, domain.DifficultyMedium, nil
	case domain.TierAdult:
		return domain.DifficultyMedium, domain.DifficultyHard, nil
	default:
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
}

// Shuffle permutes items in place: each position i from n-1 down to 1 is
// swapped with a uniformly random position j <= i.
func Shuffle[T any](rnd Random, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// GenerateSessionQuestions builds the ordered question list of a session.
// Questions are never repeated within the list; when a band runs dry the
// section takes whatever remains instead of failing.
func GenerateSessionQuestions(pool domain.QuestionPool, tier domain.Tier, total int, rnd Random) ([]domain.Question, error) {
	lowerBand, higherBand, err := Bands(tier)
	if err != nil {
		return nil, err
	}

	lower := append([]domain.Question(nil), pool[lowerBand]...)
	higher := append([]domain.Question(nil), pool[higherBand]...)
	Shuffle(rnd, lower)
	Shuffle(rnd, higher)

	used := make(map[string]struct{}, total)
	out := make([]domain.Question, 0, total)
	for _, section := range Ramp(total) {
		picked := make([]domain.Question, 0, section.Size())
		picked = draw(picked, lower, used, section.Lower)
		picked = draw(picked, higher, used, section.Higher)
		// Sections are shuffled independently so the ramp survives across boundaries.
		Shuffle(rnd, picked)
		out = append(out, picked...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w for tier %s", domain.ErrNoQuestions, tier)
	}
	return out, nil
}

func draw(dst, band []domain.Question, used map[string]struct{}, n int) []domain.Question {
	for _, q := range band {
		if n == 0 {
			break
		}
		if _, ok := used[q.ID]; ok {
			continue
		}
		used[q.ID] = struct{}{}
		dst = append(dst, q)
		n--
	}
	return dst
}
