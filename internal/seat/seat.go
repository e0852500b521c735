// Package seat models the cabin seat attached to a sale receipt.
package seat

import (
	"fmt"

	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
)

const (
	MinLetter = 'A'
	MaxLetter = 'L'
	MinNumber = 1
	MaxNumber = 60
)

// Seat is a cabin position: row letter A-L, seat number 1-60.
type Seat struct {
	Letter string `json:"letter"`
	Number int    `json:"number"`
}

// Default is the seat a fresh session starts on.
func Default() Seat {
	return Seat{Letter: "A", Number: 1}
}

// New validates and builds a seat.
func New(letter string, number int) (Seat, error) {
	if len(letter) != 1 || letter[0] < MinLetter || letter[0] > MaxLetter {
		return Seat{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("seat letter must be %c-%c", MinLetter, MaxLetter))
	}
	if number < MinNumber || number > MaxNumber {
		return Seat{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("seat number must be %d-%d", MinNumber, MaxNumber))
	}
	return Seat{Letter: letter, Number: number}, nil
}

// Letters returns the valid row letters in order.
func Letters() []string {
	letters := make([]string, 0, MaxLetter-MinLetter+1)
	for c := MinLetter; c <= MaxLetter; c++ {
		letters = append(letters, string(c))
	}
	return letters
}

func (s Seat) String() string {
	return fmt.Sprintf("%s%d", s.Letter, s.Number)
}
