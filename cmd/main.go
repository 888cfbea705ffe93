package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	grid "github.com/gridworks/go-grid2d"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "life",
				Usage: "run Conway's game of life on a random grid",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:    "width",
						Aliases: []string{"w"},
						Value:   20,
						Usage:   "number of columns",
					},
					&cli.Int64Flag{
						// no single-char alias: -h belongs to the
						// built-in help flag
						Name:  "height",
						Value: 10,
						Usage: "number of rows",
					},
					&cli.IntFlag{
						Name:    "generations",
						Aliases: []string{"g"},
						Value:   10,
						Usage:   "number of generations to simulate",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: 1,
						Usage: "seed for the initial population",
					},
					&cli.Float64Flag{
						Name:  "density",
						Value: 0.3,
						Usage: "fraction of cells initially alive",
					},
				},
				Action: func(c *cli.Context) error {
					width, height := c.Int64("width"), c.Int64("height")
					if width <= 0 || height <= 0 {
						return fmt.Errorf("life: dimensions must be positive, got %dx%d", width, height)
					}
					r := rand.New(rand.NewSource(c.Int64("seed")))
					density := c.Float64("density")
					world := grid.NewFromFunc(width, height, func() bool {
						return r.Float64() < density
					})

					start := time.Now()
					generations := c.Int("generations")
					for gen := 0; gen <= generations; gen++ {
						fmt.Printf("generation %d\n%s\n\n", gen, render(world))
						world = step(world)
					}
					log.Printf("simulated %d generations of %dx%d life in %s",
						generations, width, height, time.Since(start))
					return nil
				},
			},
			{
				Name:  "dist",
				Usage: "render the manhattan distance field around a point",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:    "width",
						Aliases: []string{"w"},
						Value:   9,
						Usage:   "number of columns",
					},
					&cli.Int64Flag{
						// no single-char alias: -h belongs to the
						// built-in help flag
						Name:  "height",
						Value: 7,
						Usage: "number of rows",
					},
					&cli.Int64Flag{
						Name:  "x",
						Value: 4,
						Usage: "x coordinate of the center",
					},
					&cli.Int64Flag{
						Name:  "y",
						Value: 3,
						Usage: "y coordinate of the center",
					},
				},
				Action: func(c *cli.Context) error {
					width, height := c.Int64("width"), c.Int64("height")
					if width <= 0 || height <= 0 {
						return fmt.Errorf("dist: dimensions must be positive, got %dx%d", width, height)
					}
					center := grid.V(c.Int64("x"), c.Int64("y"))
					field := grid.NewFromPosFunc(width, height, func(p grid.Vector) int64 {
						return p.Manhattan(center)
					})
					if !field.InBounds(center) {
						log.Printf("note: center %s lies outside the grid", center)
					}
					fmt.Println(field)
					return nil
				},
			},
		},
	}
}

// step computes the next life generation: a cell is alive when it has
// three live neighbors, or two if it was already alive.
func step(world *grid.Grid[bool]) *grid.Grid[bool] {
	return grid.PosMap(world, func(pos grid.Vector, alive bool) bool {
		neighbors := 0
		for _, d := range grid.Adjacent {
			if v, ok := world.Get(pos.Add(d)); ok && v {
				neighbors++
			}
		}
		return neighbors == 3 || (alive && neighbors == 2)
	})
}

func render(world *grid.Grid[bool]) string {
	return grid.Map(world, func(alive bool) string {
		if alive {
			return "#"
		}
		return "."
	}).String()
}
