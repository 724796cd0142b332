package rut

import "strconv"

// Checksum weight cycle bounds: weights run 2,3,4,5,6,7 and wrap back to 2,
// applied right-to-left over the body digits.
const (
	weightFloor = 2
	weightCeil  = 7
)

// ComputeCheckDigit returns the modulo-11 verifier for a numeric body.
//
// Algorithm:
//  1. Walk the body from its least-significant digit to its most-significant.
//  2. Multiply each digit by a weight cycling 2,3,4,5,6,7,2,3,… and
//     accumulate the sum.
//  3. Let r = sum mod 11. The verifier is "0" when r == 0, "K" when r == 1,
//     and the decimal string of 11-r otherwise.
//
// The body is processed as a digit sequence, never parsed into a bounded
// integer, so bodies of any length compute without overflow.
//
// Errors:
//   - ErrBadBody — body is empty or contains a non-digit character.
//
// Complexity: O(len(body)) time, O(1) space.
func ComputeCheckDigit(body string) (string, error) {
	if body == "" {
		return "", ErrBadBody
	}

	sum := 0
	weight := weightFloor
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return "", ErrBadBody
		}
		sum += int(c-'0') * weight
		weight++
		if weight > weightCeil {
			weight = weightFloor
		}
	}

	switch r := sum % 11; r {
	case 0:
		return "0", nil
	case 1:
		return "K", nil
	default:
		return strconv.Itoa(11 - r), nil
	}
}
