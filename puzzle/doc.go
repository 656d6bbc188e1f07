// Package puzzle is the interactive shortest-route puzzle: it generates a
// node set for a difficulty tier, precomputes the optimal start→end route,
// and then drives a player's route from node-selection events.
//
// Lifecycle:
//
//	AwaitingStart ──select start──▶ Building ──select end──▶ Finished
//	      ▲  (other nodes ignored)     │ (self/revisit ignored)   (terminal)
//	      └──────────── Back(): host returns to its menu ─────────┘
//
// Selection rules while Building:
//
//   - the node selected last is ignored (no self-loop);
//   - a node already on the route, start included, is ignored (no revisits);
//   - end finishes the session at once, however many nodes were visited;
//   - any other node is appended and becomes the last selection.
//
// On finishing, [start, …, end] is compared element-wise with the optimal
// route. Equal sequences succeed; anything else fails and the optimal route
// is exposed in the render state for display. A route that ties the optimum
// on cost but differs in order still fails unless WithCostEquivalence is set.
//
// Hosts only need three things: RenderState for drawing, Press/ControlAt (or
// HandleSelection) for input, and a Navigator injected with WithNavigator to
// serve the Back control. A Session is driven by one control flow and is not
// safe for concurrent use.
package puzzle
