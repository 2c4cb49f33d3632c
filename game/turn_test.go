package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTurn(t *testing.T) {
	t.Run("capturing prey on a shared tile", func(t *testing.T) {
		own := NewTokenSet(Upper, Token{Kind: Rock, Hex: Hex{0, 0}})
		opp := NewTokenSet(Lower, Token{Kind: Scissors, Hex: Hex{0, 2}})

		got, err := ApplyTurn(Slide(Hex{0, 0}, Hex{0, 1}), Slide(Hex{0, 2}, Hex{0, 1}), own, opp)

		require.NoError(t, err)
		require.Equal(t, 1, got.Kills, "Rock should capture scissors")
		require.Equal(t, 0, got.Deaths)
		require.Equal(t, Hex{0, 1}, got.Own.At(0).Hex, "Rock should stand on the contested tile")
		require.Equal(t, 0, got.Opponent.Len())
	})

	t.Run("throwing and passing", func(t *testing.T) {
		own := NewTokenSet(Upper)
		opp := NewTokenSet(Lower, Token{Kind: Paper, Hex: Hex{-4, 2}})

		got, err := ApplyTurn(Throw(Scissors, Hex{4, -2}), Pass(), own, opp)

		require.NoError(t, err)
		require.Equal(t, 1, got.Own.Len(), "Thrown token should be on the board")
		require.Equal(t, Scissors, got.Own.At(0).Kind)
		require.Equal(t, opp.Tokens(), got.Opponent.Tokens(), "Passing leaves the opponent unchanged")
	})

	t.Run("rejecting a slide from an empty tile", func(t *testing.T) {
		own := NewTokenSet(Upper, Token{Kind: Rock, Hex: Hex{0, 0}})

		_, err := ApplyTurn(Slide(Hex{1, 1}, Hex{1, 2}), Pass(), own, NewTokenSet(Lower))

		require.True(t, errors.Is(err, ErrNoToken), "Expected ErrNoToken, got %v", err)
	})

	t.Run("swapping tiles without a fight", func(t *testing.T) {
		own := NewTokenSet(Upper, Token{Kind: Rock, Hex: Hex{0, 0}})
		opp := NewTokenSet(Lower, Token{Kind: Paper, Hex: Hex{0, 1}})

		got, err := ApplyTurn(Slide(Hex{0, 0}, Hex{0, 1}), Slide(Hex{0, 1}, Hex{0, 0}), own, opp)

		require.NoError(t, err)
		require.Equal(t, 0, got.Kills+got.Deaths, "Tokens passing each other do not battle")
	})
}

func TestReserve(t *testing.T) {
	t.Run("taking tokens until empty", func(t *testing.T) {
		r := NewReserve(1)

		r, err := r.Take(Rock)
		require.NoError(t, err)
		_, err = r.Take(Rock)

		require.True(t, errors.Is(err, ErrReserveEmpty), "Second rock should be refused, got %v", err)
		require.Equal(t, 2, r.Total())
		require.Equal(t, 1, r.Thrown())
		require.Equal(t, []Kind{Paper, Scissors}, r.Available())
	})

	t.Run("throw zone grows towards the centre", func(t *testing.T) {
		first := ThrowZone(StandardBoard, Upper, 0)
		second := ThrowZone(StandardBoard, Upper, 1)

		require.Len(t, first, 5, "The home row of a radius 4 board has five tiles")
		require.Len(t, second, 11, "Two rows hold five and six tiles")
		for _, h := range first {
			require.Equal(t, 4, h.R, "Upper throws start on row 4")
		}
		for _, h := range ThrowZone(StandardBoard, Lower, 0) {
			require.Equal(t, -4, h.R, "Lower throws start on row -4")
		}
		require.Len(t, ThrowZone(StandardBoard, Lower, 8), 61, "After eight throws the whole board is open")
	})
}
