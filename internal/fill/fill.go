// Package fill implements 4-connected flood fill over raw pixel buffers.
package fill

import "github.com/Drawing-master/Drawing-Master/internal/pixel"

// Fill replaces every pixel reachable from (seedX, seedY) through
// north/south/east/west neighbors whose color equals target exactly with
// replacement. It returns the number of pixels written.
//
// The seed must lie inside buf. Fill writes nothing when target equals
// replacement or when the seed pixel does not match target.
//
// The traversal uses an explicit stack so large regions cannot exhaust the
// goroutine stack. Neighbors are pushed unconditionally and rejected when
// popped; the result depends only on connectivity, not on visiting order.
func Fill(buf *pixel.Buffer, seedX, seedY int, target, replacement pixel.Color) int {
	if target.Equal(replacement) {
		return 0
	}
	if !buf.Get(seedX, seedY).Equal(target) {
		return 0
	}

	visited := make([]bool, buf.Width*buf.Height)
	stack := []int{seedX, seedY}
	written := 0

	for len(stack) > 0 {
		n := len(stack)
		x, y := stack[n-2], stack[n-1]
		stack = stack[:n-2]

		if !buf.In(x, y) {
			continue
		}
		key := y*buf.Width + x
		if visited[key] {
			continue
		}
		visited[key] = true
		if !buf.Get(x, y).Equal(target) {
			continue
		}

		buf.Set(x, y, replacement)
		written++

		stack = append(stack,
			x+1, y,
			x-1, y,
			x, y+1,
			x, y-1,
		)
	}
	return written
}
