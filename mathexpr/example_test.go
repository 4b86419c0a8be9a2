package mathexpr_test

import (
	"fmt"

	"github.com/plotforge/funcplot/mathexpr"
)

// ExampleCompile compiles a formula once and evaluates it over a few
// sample points, exactly how the graph sampler uses it.
func ExampleCompile() {
	e, err := mathexpr.Compile("x^2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, x := range []float64{0, 1, 2, 3} {
		y, _ := e.Eval(x)
		fmt.Printf("f(%.0f)=%.0f ", x, y)
	}
	fmt.Println()
	// Output:
	// f(0)=0 f(1)=1 f(2)=4 f(3)=9
}

// ExampleEvalNumber evaluates an axis-bound label the way the input parser
// does: same grammar, constants available, no free variable.
func ExampleEvalNumber() {
	v, err := mathexpr.EvalNumber("2*pi")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", v)
	// Output:
	// 6.2832
}
