package main

import (
	"flag"
	"fmt"
	"os"

	"lowpoly-creature/internal/creature"
)

func main() {
	definition := flag.String("definition", "", "Creature definition YAML (default: built-in elephant)")
	variantSeed := flag.Float64("variant", 0, "Variant seed")
	seed := flag.Int64("seed", 0, "Behavior seed")
	simulate := flag.Float64("simulate", 0, "Dry-run the behavior controller for N seconds and log state changes")
	flag.Parse()

	opts := creature.Options{
		VariantSeed: *variantSeed,
		Seed:        *seed,
	}

	if *definition != "" {
		def, err := creature.LoadDefinition(*definition)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Definition = &def
	}

	c, err := creature.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bones: %d\n", len(c.Skeleton.Bones))
	for i, b := range c.Skeleton.Bones {
		parent := "(root)"
		if b.Parent >= 0 {
			parent = c.Skeleton.Bones[b.Parent].Name
		}
		pos := c.Skeleton.WorldPosition(i)
		fmt.Printf("  [%2d] %-24s parent=%-24s world=(%.2f, %.2f, %.2f)\n",
			i, b.Name, parent, pos[0], pos[1], pos[2])
	}

	fmt.Printf("\nMesh: %d vertices, %d triangles\n", c.Mesh.VertexCount(), c.Mesh.TriangleCount())

	if *simulate > 0 {
		fmt.Printf("\nSimulating %.1fs:\n", *simulate)
		const dt = 1.0 / 30.0
		last := c.Behavior.Debug().State
		fmt.Printf("  t=0.00 state=%s\n", last)
		for t := 0.0; t < *simulate; t += dt {
			c.Update(dt)
			if s := c.Behavior.Debug().State; s != last {
				fmt.Printf("  t=%.2f state=%s\n", t, s)
				last = s
			}
		}
	}
}
