// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"log"

	"github.com/pkg/profile"
	"github.com/yurikaze/kanri"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 200
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for n__ := 0; n__ < rounds; n__++ {
		c := kanri.NewCoordinator()
		kanri.RegisterComponent[comp1](c)
		kanri.RegisterComponent[comp2](c)

		for n__ := 0; n__ < iters; n__++ {
			ents := make([]kanri.Entity, 0, numEntities)
			for n__ := 0; n__ < numEntities; n__++ {
				e, err := c.CreateEntity()
				if err != nil {
					log.Fatal(err)
				}
				if err := kanri.AddComponent(c, e, comp1{V: 1, W: 2}); err != nil {
					log.Fatal(err)
				}
				if err := kanri.AddComponent(c, e, comp2{V: 3, W: 4}); err != nil {
					log.Fatal(err)
				}
				ents = append(ents, e)
			}
			for _, e := range ents {
				if err := c.DestroyEntity(e); err != nil {
					log.Fatal(err)
				}
			}
		}
	}
}
