// Package nodegen produces well-separated 2-D puzzle nodes by rejection
// sampling inside a margin-bounded play area.
//
// The generator draws uniform candidate positions and accepts a candidate
// only when every previously accepted node lies at least MinDistance away.
// Accepted nodes receive sequential identities 0,1,2,… in acceptance order.
//
// Configuration follows the functional-options style:
//
//   - WithSeed / WithRand:   RNG source (required; generation is stochastic).
//   - WithArea:              play-area extent (width, height).
//   - WithMargin:            distance kept from every border.
//   - WithMinDistance:       minimum pairwise spacing d_min.
//   - WithMaxAttempts:       iteration ceiling for candidate draws.
//   - WithLogger:            slog logger for generation summaries.
//
// Guarantees:
//
//   - Every returned node satisfies margin ≤ X ≤ width−margin and
//     margin ≤ Y ≤ height−margin.
//   - Every pair of returned nodes is at least MinDistance apart.
//   - A misconfigured request (too many nodes for the area at the given
//     spacing) fails with ErrGenerationExhausted instead of looping forever.
//
// Spacing checks go through an R-tree (dhconnelly/rtreego): only nodes inside
// the candidate's 2·d_min box are compared exactly, so a draw costs
// O(log n) plus a constant neighbourhood instead of O(n).
package nodegen
