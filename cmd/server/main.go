package main

import (
	"fmt"

	"github.com/jules0707/ai50-projects-2023-x-pagerank/server"
	"github.com/jules0707/ai50-projects-2023-x-pagerank/utils"
)

func main() {
	env := utils.ReadEnvVars()
	utils.InitLog(env.ServerLog)

	s := server.New(server.Config{
		Damping:       env.Damping,
		Samples:       env.Samples,
		Tolerance:     env.Tolerance,
		MaxIterations: env.MaxIterations,
		ProbeCheck:    env.ProbeCheck,
	})
	e := s.Echo()
	addr := fmt.Sprintf("%s:%d", env.Host, env.Port)
	fmt.Printf("Starting PageRank server at %s (damping %.2f, %d samples, tolerance %g)\n",
		addr, env.Damping, env.Samples, env.Tolerance)
	err := e.Start(addr)
	utils.FailOnError("Failed to serve", err)
}
