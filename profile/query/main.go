// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.pprof

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
	iters := 2000
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

		for i := 0; i < numEntities; i++ {
			e, err := c.CreateEntity()
			if err != nil {
				log.Fatal(err)
			}
			if err := kanri.AddComponent(c, e, comp1{V: int64(i)}); err != nil {
				log.Fatal(err)
			}
			if i%2 == 0 {
				if err := kanri.AddComponent(c, e, comp2{W: int64(i)}); err != nil {
					log.Fatal(err)
				}
			}
		}

		for n__ := 0; n__ < iters; n__++ {
			ents, err := kanri.EntitiesWith2[comp1, comp2](c)
			if err != nil {
				log.Fatal(err)
			}
			for _, e := range ents {
				c1, err := kanri.GetComponent[comp1](c, e)
				if err != nil {
					log.Fatal(err)
				}
				c2, err := kanri.GetComponent[comp2](c, e)
				if err != nil {
					log.Fatal(err)
				}
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
