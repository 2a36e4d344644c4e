package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParsePage turns a raw ?page= value into a page index.
// Missing, non-numeric and negative values give page 0. Large values, including
// ones past the int range, are clamped to MaxInt32 so page*perPage stays well
// inside int64.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	page, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return math.MaxInt32
		}
		return 0
	}
	return lo.Clamp(page, 0, math.MaxInt32)
}
