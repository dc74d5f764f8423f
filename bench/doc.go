// Package bench measures the wall-clock performance of the labeling
// algorithms and persists the statistics.
//
// What:
//
//   - Run: repeated labeling of one grid under one algorithm/connectivity,
//     reporting per-run times plus mean, population standard deviation,
//     min, max, and the component count.
//   - RunAll: the same over all four algorithms, for side-by-side
//     comparison on identical input.
//   - Store: SQLite-backed persistence of results (modernc.org/sqlite, no
//     cgo), so runs accumulate across invocations.
//
// Why:
//
//   - The four algorithms induce the same partition by contract; their only
//     observable difference is cost. Timing repeated deterministic runs is
//     how that difference is quantified.
//
// Errors:
//
//   - ErrInvalidIterations: non-positive iteration count.
//   - Labeling and database errors are wrapped and propagated.
package bench
