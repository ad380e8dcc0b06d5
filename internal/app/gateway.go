package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"quiz-racer/internal/domain"
)

// TeeGateway submits every result to all of its gateways concurrently,
// for example a leaderboard store and an event publisher.
type TeeGateway struct {
	gateways []Gateway
}

func NewTeeGateway(gateways ...Gateway) *TeeGateway {
	out := make([]Gateway, 0, len(gateways))
	for _, g := range gateways {
		if g != nil {
			out = append(out, g)
		}
	}
	return &TeeGateway{gateways: out}
}

// SubmitResult waits for every gateway and returns the first failure.
// One failing gateway does not cancel the others.
func (t *TeeGateway) SubmitResult(ctx context.Context, result domain.Result) error {
	var g errgroup.Group
	for _, gw := range t.gateways {
		gw := gw
		g.Go(func() error {
			return gw.SubmitResult(ctx, result)
		})
	}
	return g.Wait()
}
