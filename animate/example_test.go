package animate_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/animate"
)

// ExampleOffsets prints the schedule of three steps 10ms apart; the last
// entry is the completion time.
func ExampleOffsets() {
	fmt.Println(animate.Offsets(3, 10*time.Millisecond))
	// Output: [0s 10ms 20ms 30ms]
}

// ExampleChain replays a visited trace and then a path trace.
func ExampleChain() {
	visited := []string{"A", "B", "C"}
	path := []string{"A", "C"}

	h := animate.Chain(context.Background(),
		func() { fmt.Println("done") },
		animate.Sequence(visited, 0, func(s string) { fmt.Println("visit", s) }),
		animate.Sequence(path, 0, func(s string) { fmt.Println("path", s) }),
	)
	h.Wait()
	fmt.Println(h.Completed(), h.Steps())
	// Output:
	// visit A
	// visit B
	// visit C
	// path A
	// path C
	// done
	// true 5
}
