// File: spacetime/example_test.go
// Package spacetime_test provides a runnable example of planning around
// another agent's committed occupancy.
package spacetime_test

import (
	"fmt"

	"github.com/wayfarer-go/wayfarer/graphx"
	"github.com/wayfarer-go/wayfarer/reservation"
	"github.com/wayfarer-go/wayfarer/spacetime"
)

// ExampleFindPathWithDepthLimit plans along a corridor whose next cell is
// occupied for one time step: the agent pauses in place, then proceeds.
func ExampleFindPathWithDepthLimit() {
	// 1) A 4-vertex corridor: 0 - 1 - 2 - 3, unit costs.
	g, err := graphx.NewGraph(4, false, []graphx.EdgeSpec{
		{From: 0, To: 1, Cost: 1},
		{From: 1, To: 2, Cost: 1},
		{From: 2, To: 3, Cost: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Another agent occupies vertex 1 at time 1, exactly when a direct
	//    march would arrive there.
	rt, err := reservation.NewTable(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rt.AddVertexConstraint(1, 1)

	// 3) The plan pauses at 0 for one step (the repeated vertex), letting
	//    the occupant clear, then walks the corridor.
	path, err := spacetime.FindPathWithDepthLimit(g, rt, 0, 3, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(path)
	// Output: [0 0 1 2 3]
}
