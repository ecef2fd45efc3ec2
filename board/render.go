package board

import (
	"fmt"
	"strings"

	"github.com/brensch/duelsnek/game"
)

// String renders the board for logs and debugging. 'W'/'B' mark heads,
// 'w'/'b' body segments, 'F' the food cell. Rows print top to bottom.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d white(health=%d len=%d) black(health=%d len=%d)\n",
		b.n, b.n,
		b.health[0], len(b.bodies[0]),
		b.health[1], len(b.bodies[1]))

	for y := int32(0); y < b.n; y++ {
		for x := int32(0); x < b.n; x++ {
			switch v := b.occupant(game.Point{X: x, Y: y}); {
			case v == game.Food:
				sb.WriteByte('F')
			case v == 1:
				sb.WriteByte('W')
			case v == -1:
				sb.WriteByte('B')
			case v > 0:
				sb.WriteByte('w')
			case v < 0:
				sb.WriteByte('b')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
