package usecase

import (
	"fmt"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
)

// Normalize maps any index onto [0, n).
func Normalize(i, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: gallery has no images", domain.ErrNotFound)
	}
	return ((i % n) + n) % n, nil
}

// Next is the index after i, wrapping from the last image to the first.
func Next(i, n int) (int, error) {
	return Normalize(i+1, n)
}

// Prev is the index before i, wrapping from the first image to the last.
func Prev(i, n int) (int, error) {
	return Normalize(i-1, n)
}
