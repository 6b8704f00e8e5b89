package customs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned when there is nothing to distribute weight over.
	ErrNoItems = errors.New("customs: no items to reconcile")
	// ErrInvalidQuantity is returned for items with a quantity below one.
	ErrInvalidQuantity = errors.New("customs: item quantity must be positive")
)

// Item is the reconciler's view of a shipment line.
type Item struct {
	Quantity   int
	UnitWeight Weight
}

// Reconciliation is the outcome of distributing a declared total weight
// over shipment lines.
type Reconciliation struct {
	// PerUnit holds the net weight of a single piece, in input order.
	PerUnit []Weight
	// Lines holds the reconciled weight of each full line, in input order.
	Lines []Weight
	// Unresolved is the negative remainder that no line had headroom for.
	// It is zero unless the declared total is below the lines' floors.
	Unresolved Weight
}

// Reconcile distributes the gap between the summed item weights and total
// across items so that the declared lines add up to total. Every line keeps
// at least 0.01 per piece. Lines are visited in input order: the first line
// absorbs a positive remainder, the first line above its floor absorbs a
// negative one.
func Reconcile(items []Item, total Weight) (Reconciliation, error) {
	if len(items) == 0 {
		return Reconciliation{}, ErrNoItems
	}

	weights := make([]Weight, len(items))
	floors := make([]Weight, len(items))
	var itemTotal Weight

	for i, it := range items {
		if it.Quantity < 1 {
			return Reconciliation{}, fmt.Errorf("item %d: %w", i, ErrInvalidQuantity)
		}
		qty := Weight(it.Quantity)
		floors[i] = qty
		weights[i] = it.UnitWeight * qty
		if weights[i] < floors[i] {
			weights[i] = floors[i]
		}
		itemTotal += weights[i]
	}

	var unresolved Weight

	if diff := total - itemTotal; diff != 0 {
		perItem := Weight(divHalfDown(int64(diff), int64(len(items))))
		var applied Weight

		if perItem != 0 {
			for i := range weights {
				before := weights[i]
				next := before + perItem
				delta := perItem
				if next <= floors[i] {
					next = floors[i]
					delta = floors[i] - before
				}
				weights[i] = next
				applied += delta
			}
		}

		left := diff - applied
		switch {
		case left > 0:
			weights[0] += left
		case left < 0:
			unresolved = left
			for i := range weights {
				headroom := weights[i] - floors[i]
				if headroom <= 0 {
					continue
				}
				take := left
				if -take > headroom {
					take = -headroom
				}
				weights[i] += take
				unresolved = left - take
				break
			}
		}
	}

	perUnit := make([]Weight, len(items))
	for i, it := range items {
		perUnit[i] = Weight(divHalfDown(int64(weights[i]), int64(it.Quantity)))
	}

	return Reconciliation{
		PerUnit:    perUnit,
		Lines:      weights,
		Unresolved: unresolved,
	}, nil
}

// Sum returns the declared weight of the reconciled per-unit weights.
func (r Reconciliation) Sum(items []Item) Weight {
	var sum Weight
	for i, it := range items {
		if i >= len(r.PerUnit) {
			break
		}
		sum += r.PerUnit[i] * Weight(it.Quantity)
	}
	return sum
}
