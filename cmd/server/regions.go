package main

import (
	"sort"
	"strings"

	"github.com/marben/mandelgrid"
)

// regions maps the -region flag values onto the predefined landmarks.
var regions = map[string]mandelgrid.Region{
	"full":     mandelgrid.FullSet,
	"seahorse": mandelgrid.SeahorseValley,
	"elephant": mandelgrid.ElephantValley,
	"minibrot": mandelgrid.SpiralMinibrot,
	"triple":   mandelgrid.TripleSpiral,
	"dragon":   mandelgrid.ValleyOfTheDragon,
	"spiral":   mandelgrid.MinibrotInMiniSpiral,
}

func regionNames() string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
