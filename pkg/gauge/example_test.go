package gauge_test

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/speedo/pkg/gauge"
)

func ExampleBuild() {
	scene, err := gauge.Build(gauge.Spec{
		Value:    80,
		Max:      220,
		Title:    "Speed",
		Unit:     "km/h",
		Color:    color.NRGBA{50, 205, 50, 255},
		Gradient: true,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("angle: %.4f\n", scene.Angle)
	fmt.Println("arcs:", len(scene.Arcs))
	fmt.Println("first tick:", scene.Ticks[0].Text)
	fmt.Println("last tick:", scene.Ticks[len(scene.Ticks)-1].Text)
	fmt.Println("label:", scene.Label.Lines)
	// Output:
	// angle: 65.4545
	// arcs: 52
	// first tick: 0
	// last tick: 220
	// label: [80 km/h Speed]
}

func ExampleBuildTicks() {
	ticks, _ := gauge.BuildTicks(8000)
	for _, t := range ticks[:3] {
		fmt.Printf("%d at %.1f°\n", t.Value, t.Angle)
	}
	// Output:
	// 0 at 0.0°
	// 800 at 18.0°
	// 1600 at 36.0°
}

func ExampleNormalize() {
	angle, _ := gauge.Normalize(3000, 8000, gauge.ClampRange)
	fmt.Println(angle)
	// Output: 67.5
}
