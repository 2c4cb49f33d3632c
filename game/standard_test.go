package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRules(t *testing.T) {
	rules := NewStandardRules()

	t.Run("swinging over a friendly neighbour", func(t *testing.T) {
		own := NewTokenSet(Upper, Token{Kind: Rock, Hex: Hex{0, 0}}, Token{Kind: Paper, Hex: Hex{0, 1}})

		got := rules.SwingTargets(StandardBoard, Hex{0, 0}, own)

		require.Equal(t, []Hex{{1, 1}, {0, 2}, {-1, 2}}, got, "Swings land behind the pivot, never next to the origin")
	})

	t.Run("no swings without a pivot", func(t *testing.T) {
		own := NewTokenSet(Upper, Token{Kind: Rock, Hex: Hex{0, 0}}, Token{Kind: Paper, Hex: Hex{0, 2}})

		require.Empty(t, rules.SwingTargets(StandardBoard, Hex{0, 0}, own))
	})

	t.Run("validating each action type", func(t *testing.T) {
		own := NewTokenSet(Upper, Token{Kind: Rock, Hex: Hex{0, 0}}, Token{Kind: Paper, Hex: Hex{0, 1}})
		reserve := NewReserve(1)

		require.NoError(t, rules.Validate(StandardBoard, Pass(), own, reserve))
		require.NoError(t, rules.Validate(StandardBoard, Slide(Hex{0, 0}, Hex{1, 0}), own, reserve))
		require.NoError(t, rules.Validate(StandardBoard, Swing(Hex{0, 0}, Hex{0, 2}), own, reserve))
		require.NoError(t, rules.Validate(StandardBoard, Throw(Rock, Hex{4, -4}), own, reserve))

		cases := []struct {
			action Action
			want   error
		}{
			{Slide(Hex{0, 0}, Hex{2, 0}), ErrIllegalAction},
			{Slide(Hex{3, 0}, Hex{2, 0}), ErrNoToken},
			{Swing(Hex{0, 0}, Hex{-2, 0}), ErrIllegalAction},
			{Throw(Rock, Hex{0, 0}), ErrIllegalAction},
			{Throw(Rock, Hex{5, 0}), ErrOutOfBounds},
			{Action{Type: ActionType(9), To: Hex{0, 0}}, ErrIllegalAction},
		}
		for _, c := range cases {
			err := rules.Validate(StandardBoard, c.action, own, reserve)
			require.True(t, errors.Is(err, c.want), "%s: expected %v, got %v", c.action, c.want, err)
		}

		empty, err := reserve.Take(Rock)
		require.NoError(t, err)
		err = rules.Validate(StandardBoard, Throw(Rock, Hex{4, -4}), own, empty)
		require.True(t, errors.Is(err, ErrReserveEmpty), "Expected ErrReserveEmpty, got %v", err)
	})
}

func TestRelocation(t *testing.T) {
	require.Equal(t, SlideAction, Relocation(Hex{0, 0}, Hex{0, 1}).Type)
	require.Equal(t, SwingAction, Relocation(Hex{0, 0}, Hex{0, 2}).Type)
	require.Equal(t, "(THROW, s, (4, -2))", Throw(Scissors, Hex{4, -2}).String())
}
