package content

import (
	"errors"
	"strconv"
	"strings"
)

// MaxDice caps the number of dice in a single roll
const MaxDice = 100

// MaxSides caps the faces on one die so a total can never overflow
const MaxSides = 1_000_000

// DefaultDice is rolled when no spec is given
const DefaultDice = "1d6"

var ErrInvalidDice = errors.New("invalid dice: use NdM with 1-100 dice of 1-1000000 sides")

// Dice is a parsed NdM expression
type Dice struct {
	Count int
	Sides int
}

// RollResult holds each die and the sum
type RollResult struct {
	Dice  Dice
	Rolls []int
	Total int
}

// ParseDice parses "NdM". A missing N means one die, so "d20" is valid.
func ParseDice(spec string) (Dice, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "d")
	if len(parts) != 2 {
		return Dice{}, ErrInvalidDice
	}

	count := 1
	if parts[0] != "" {
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return Dice{}, ErrInvalidDice
		}
		count = n
	}

	sides, err := strconv.Atoi(parts[1])
	if err != nil {
		return Dice{}, ErrInvalidDice
	}

	if count < 1 || count > MaxDice || sides < 1 || sides > MaxSides {
		return Dice{}, ErrInvalidDice
	}
	return Dice{Count: count, Sides: sides}, nil
}

// Roll throws the dice
func (p *Picker) Roll(d Dice) RollResult {
	res := RollResult{Dice: d, Rolls: make([]int, d.Count)}
	for i := range res.Rolls {
		res.Rolls[i] = p.Intn(d.Sides) + 1
		res.Total += res.Rolls[i]
	}
	return res
}

// RollSpec parses and rolls in one step
func (p *Picker) RollSpec(spec string) (RollResult, error) {
	d, err := ParseDice(spec)
	if err != nil {
		return RollResult{}, err
	}
	return p.Roll(d), nil
}
