package direction_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/point"
)

// ExampleCardinal_Rotate walks a guard that turns right at each step.
func ExampleCardinal_Rotate() {
	d := direction.North
	var path []string
	for i := 0; i < 4; i++ {
		path = append(path, d.String())
		d = d.Rotate(90)
	}
	fmt.Println(strings.Join(path, " "))
	fmt.Println(direction.Delta[int](direction.North))

	// Output:
	// North East South West
	// (-1, 0)
}

// ExampleMove casts a ray three cells to the south-east.
func ExampleMove() {
	m := direction.NewMove(point.New[uint](0, 0), direction.SE).WithSteps(3)
	p, ok := m.Target()
	fmt.Println(p, ok)

	// Output:
	// (3, 3) true
}
