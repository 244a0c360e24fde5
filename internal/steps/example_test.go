package steps_test

import (
	"fmt"

	"stepper/internal/steps"
)

// Example walks a three-step wizard forward until it stops at the last step.
func Example() {
	c, err := steps.New(steps.Names("account", "profile", "confirm"))
	if err != nil {
		panic(err)
	}

	fmt.Println(c.CurrentStepIndex(), c.CurrentStep())
	for c.TransitionToNext() {
		fmt.Println(c.CurrentStepIndex(), c.CurrentStep())
	}
	_, ok := c.PickNext()
	fmt.Println("has next:", ok)

	// Output:
	// 1 account
	// 2 profile
	// 3 confirm
	// has next: false
}

// Example_circular shows wrap-around navigation in a carousel.
func Example_circular() {
	c, _ := steps.New(
		steps.Names("a", "b"),
		steps.WithCircular(true),
		steps.WithInitialStep("b"),
	)

	c.TransitionToNext()
	fmt.Println(c.CurrentStep())
	c.TransitionToPrevious()
	fmt.Println(c.CurrentStep())

	// Output:
	// a
	// b
}

// Example_records mixes caller attributes into steps; lookups use the name only.
func Example_records() {
	c, _ := steps.New([]steps.Step{
		steps.Record("intro", map[string]any{"title": "Welcome"}),
		steps.Record("done", map[string]any{"title": "All set"}),
	})

	c.TransitionTo(steps.Name("done"))
	node, _ := c.CurrentStepNode()
	title, _ := node.Attr("title")
	fmt.Println(c.GetIndex("done"), title)
	fmt.Println(c.GetIndex("missing"))

	// Output:
	// 2 All set
	// 0
}
