package yak

import (
	"errors"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// ParseEach 并发解析一批互不相关的文档
//
// 每次解析独占自己的 token 序列与游标，调用之间无共享可变状态，
// 跨文档并行天然安全。任务提交到固定大小的 ants goroutine 池，
// workers <= 0 时按 CPU 核数取默认值（解析是 CPU 密集任务）。
//
// 返回切片与 docs 下标对齐，失败文档对应位置为 nil，
// 全部错误经 errors.Join 合并返回。
func ParseEach(docs []string, workers int) ([]*Value, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = defaultWorkers()
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]*Value, len(docs))
	errs := make([]error, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		i := i
		wg.Add(1)
		if serr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = Parse(docs[i])
		}); serr != nil {
			wg.Done()
			errs[i] = serr
		}
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

// defaultWorkers 解析为 CPU 密集任务，worker 数取 CPU 核数
func defaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}
