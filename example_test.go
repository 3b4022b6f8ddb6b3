package kmeans_test

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeans"
)

func ExampleCluster() {
	data := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		10, 0,
		10, 1,
	})

	res, err := kmeans.Cluster(data, 2, kmeans.WithQuantileSeeding())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Assignments)
	fmt.Println(res.Centroids)
	// Output:
	// [0 0 1 1]
	// [[0 0.5] [10 0.5]]
}

func ExampleEngine_Step() {
	data := mat.NewDense(3, 1, []float64{1, 2, 6})

	e, err := kmeans.NewEngine(data, [][]float64{{0}})
	if err != nil {
		log.Fatal(err)
	}

	for !e.Done() {
		movement, err := e.Step()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(e.Iterations(), movement, e.Kernels())
	}
	// Output:
	// 1 3 [[3]]
	// 2 0 [[3]]
}
