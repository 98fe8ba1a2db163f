package main

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ttacon/chalk"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/aquarium/internal/game/scene"
)

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, chalk.Cyan.Color("== "+title+" =="))
}

func vec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%7.3f, %7.3f, %7.3f)", v.X(), v.Y(), v.Z())
}

// writeSummary prints a human readable snapshot of st.
func writeSummary(w io.Writer, st *scene.State, seed int64) error {
	heading(w, "scene")
	fmt.Fprintf(w, "time      %.3fs\n", st.Now())
	fmt.Fprintf(w, "seed      %d\n", seed)
	fmt.Fprintf(w, "draws     %d\n", len(st.Render()))

	p := st.Player()
	heading(w, "player")
	fmt.Fprintf(w, "position  %s\n", vec(p.Position))
	fmt.Fprintf(w, "heading   %.3f rad\n", p.Heading)
	mouth := chalk.Green.Color("closed")
	if p.Mouth.IsOpen() {
		mouth = chalk.Yellow.Color(fmt.Sprintf("open %.2f", p.Mouth.Extension()))
	}
	fmt.Fprintf(w, "mouth     %s\n", mouth)

	heading(w, "school")
	b := st.Bounds()
	for i, f := range st.School().Fish {
		status := chalk.Green.Color("in")
		if !b.Contains(f.Position, 1e-4) {
			status = chalk.Red.Color("OUT")
		}
		fmt.Fprintf(w, "%2d %-5s %s heading %6.3f %s\n", i, f.Kind, vec(f.Position), f.HeadingAngle(), status)
	}
	_, err := fmt.Fprintf(w, "bounces   %d\n", st.School().Bounces())
	return err
}

// writeYAML writes the draw list as a YAML sequence.
func writeYAML(w io.Writer, cmds []scene.DrawCommand) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cmds); err != nil {
		return fmt.Errorf("encoding draw list: %w", err)
	}
	return enc.Close()
}
