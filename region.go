package mandelgrid

// Region is a rectangle in the complex plane
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// FullSet is the classic full view of the Mandelbrot set.
// It is the fixed region the CLI evaluator samples.
var FullSet = Region{
	Xmin: -2.0,
	Xmax: 1.0,
	Ymin: -1.5,
	Ymax: 1.5,
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Grid is an n×n lattice of sample points spanning a region.
// Index (0,0) maps exactly onto (Xmin,Ymin) and (n-1,n-1) onto (Xmax,Ymax),
// which is why n must be at least 2.
type Grid struct {
	Region Region
	N      int
}

// At returns the plane coordinates of grid point (i, j).
func (g Grid) At(i, j int) (x, y float64) {
	x = g.Region.Xmin + (g.Region.Xmax-g.Region.Xmin)*float64(i)/float64(g.N-1)
	y = g.Region.Ymin + (g.Region.Ymax-g.Region.Ymin)*float64(j)/float64(g.N-1)
	return x, y
}

// Cells returns the total number of sample points in the grid.
func (g Grid) Cells() int {
	return g.N * g.N
}
