// Package routepuzzle is a procedurally generated shortest-route puzzle:
// connect every node on the board from S to E along the cheapest path.
//
// A round is built in four steps, each owned by one subpackage:
//
//	nodegen/    rejection-sampled node placement with a spacing guarantee
//	core/       the complete Euclidean graph and the S/E endpoint rule
//	tsp/        exact fixed-endpoint Hamiltonian path (plus Held–Karp and
//	            an MST lower bound for cross-checks)
//	puzzle/     the session state machine that scores a player's route
//
// Supporting packages:
//
//	config/     YAML configuration validated with struct tags
//	metrics/    Prometheus collectors for generation, solving and play
//	internal/   terminal (bubbletea) and window (ebiten) hosts
//	cmd/        the routepuzzle binary
//
// Quick ASCII example (Easy tier, optimal route drawn):
//
//	[S]───[1]        [4]
//	        ╲       ╱   ╲
//	        [2]───[3]    [E]
//
// See cmd/routepuzzle for flags; -mode solve prints an instance and its
// optimal route without any interaction.
package routepuzzle
