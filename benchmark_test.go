package threadpool_test

import (
	"sync"
	"testing"

	"github.com/ygrebnov/threadpool"
	"github.com/ygrebnov/threadpool/metrics"
)

func BenchmarkExecute(b *testing.B) {
	tests := []struct {
		name string
		opts []threadpool.Option
		jobs int
	}{
		{"goroutine_n1", nil, 1},
		{"goroutine_n256", nil, 256},
		{"osthread_n1", []threadpool.Option{threadpool.WithOSThread()}, 1},
		{"osthread_n256", []threadpool.Option{threadpool.WithOSThread()}, 256},
		{"goroutine_basic_metrics_n256", []threadpool.Option{threadpool.WithMetrics(metrics.NewBasicProvider())}, 256},
	}
	for _, test := range tests {
		b.Run(test.name, func(b *testing.B) {
			p, err := threadpool.Build(1, test.opts...)
			if err != nil {
				b.Fatal(err)
			}
			var wg sync.WaitGroup
			b.ResetTimer()
			for range b.N {
				wg.Add(test.jobs)
				for range test.jobs {
					p.Execute(wg.Done)
				}
				wg.Wait()
			}
		})
	}
}
