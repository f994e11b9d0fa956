package drift

import (
	"fmt"
	"testing"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{1, 10, 100, 1000, 12000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				if _, err := Solve(n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
