package twoqueue_test

import (
	"testing"

	"github.com/katalvlaran/bihs/twoqueue"
)

// BenchmarkStore_AddCloseCycle measures admission plus ready-heap
// drain, the hot path of the TwoLevelBAE loop.
func BenchmarkStore_AddCloseCycle(b *testing.B) {
	const batch = 1024

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := twoqueue.NewStore[uint64]()
		for j := uint64(0); j < batch; j++ {
			q.AddOpenNode(j, j, float64(j%97), float64(j%31), float64(j%13),
				twoqueue.NoNode, twoqueue.OpenReady)
		}
		for q.OpenReadySize() > 0 {
			q.Close()
		}
	}
}
