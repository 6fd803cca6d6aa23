package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/parsssp/dijkstra"
)

// writeDistances prints the vertex/distance table; unreachable vertices
// show INF.
func writeDistances(w io.Writer, dist []int64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Vertex\tDistance from Source")
	for v, d := range dist {
		fmt.Fprintf(bw, "%d\t%s\n", v, formatDistance(d))
	}
	return bw.Flush()
}

func formatDistance(d int64) string {
	if d == dijkstra.Infinity {
		return "INF"
	}
	return strconv.FormatInt(d, 10)
}
