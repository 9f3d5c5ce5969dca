package traverse_test

import (
	"fmt"

	"github.com/avolkov/wayfind/core"
	"github.com/avolkov/wayfind/traverse"
)

// The direct a→d edge costs 2.0, but relaxation discovers the three-hop
// detour through b and c at 1.5 and records it instead.
func ExampleShortestPath() {
	g := core.New("complete-diamond")
	g.AddEdge("a", "b", 0.5)
	g.AddEdge("a", "c", 2.0)
	g.AddEdge("b", "d", 2.0)
	g.AddEdge("c", "d", 0.5)
	g.AddEdge("b", "c", 0.5)
	g.AddEdge("a", "d", 2.0)

	path, err := traverse.ShortestPath(g, "a", "d", traverse.StrategyDFSIterative)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	weight, _ := g.PathWeight(path)
	fmt.Printf("%s (weight %v)\n", path, weight)
	// Output: a → b → c → d (weight 1.5)
}

func ExampleBFS() {
	g := core.New("triangle", core.WithUndirected())
	g.AddEdge("a", "b", 0.5)
	g.AddEdge("a", "c", 0.5)
	g.AddEdge("b", "c", 0.5)

	a, _ := core.NewVertex("a")
	visited, err := traverse.BFS(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	b, _ := core.NewVertex("b")
	c, _ := core.NewVertex("c")
	fmt.Println(visited[b])
	fmt.Println(visited[c])
	// Output:
	// a → b
	// a → c
}
