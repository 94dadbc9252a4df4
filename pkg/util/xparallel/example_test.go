package xparallel_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/snptools/snpkit/pkg/util/xparallel"
)

func ExampleDispatcher_Collect() {
	// 默认顺序执行；WithParallel() 可切换为并发执行，结果顺序不变
	d := xparallel.New[string, string]()

	upper := func(ctx context.Context, s string) (string, error) {
		return strings.ToUpper(s), nil
	}

	results, err := d.Collect(context.Background(), upper, []string{"chr1", "chr2", "chrX"})
	if err != nil {
		panic(err)
	}
	fmt.Println(results)
	// Output: [CHR1 CHR2 CHRX]
}

func ExampleDispatcher_Map() {
	// 顺序模式下 Map 是惰性的：结果在迭代时才计算
	d := xparallel.New[int, int]()

	square := func(ctx context.Context, n int) (int, error) {
		return n * n, nil
	}

	for r, err := range d.Map(context.Background(), square, []int{1, 2, 3}) {
		if err != nil {
			break
		}
		fmt.Println(r)
	}
	// Output:
	// 1
	// 4
	// 9
}

func ExamplePooled() {
	// 通过 NewWithStrategy 显式指定策略
	d := xparallel.NewWithStrategy(xparallel.Pooled[int, int](4))

	double := func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	}

	results, _ := d.Collect(context.Background(), double, []int{10, 20, 30})
	fmt.Println(results)
	// Output: [20 40 60]
}
