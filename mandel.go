// Package mandelgrid holds the Mandelbrot domain types and the escape-time
// kernel shared by the CLI evaluator, the live viewer and the benchmark
// runner.
package mandelgrid

// MaxIter is the iteration cap of the escape-time test.
const MaxIter = 1000

// EscapeIter iterates z -> z² + c from z = 0 for c = x + yi and returns the
// number of completed iterations. The loop stops as soon as |z|² reaches 4,
// or after maxIter iterations for points that never escape.
func EscapeIter(x, y float64, maxIter int) int {
	zx, zy := 0.0, 0.0
	iter := 0
	for zx*zx+zy*zy < 4.0 && iter < maxIter {
		zx, zy = zx*zx-zy*zy+x, 2*zx*zy+y
		iter++
	}
	return iter
}

// InSet reports whether c = x + yi passes the bounded escape-time membership
// test: the iteration must exhaust MaxIter steps with |z|² staying below 4
// throughout. Points near the true boundary may be over-approximated; that
// is a property of the test, and the emitted set is the contract.
func InSet(x, y float64) bool {
	return EscapeIter(x, y, MaxIter) == MaxIter
}
