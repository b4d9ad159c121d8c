// Package stp provides the 4×4 sliding-tile puzzle domain with the
// Manhattan-distance heuristic.
//
// Overview:
//
//   - A state is an assignment of tiles 1..15 and the blank to the 16
//     board positions; a move slides a tile into the blank at unit
//     cost.
//   - H sums, over the fifteen tiles, the Manhattan distance between a
//     tile's position in the two states (the blank is excluded). The
//     sum is admissible and consistent, and being defined between two
//     arbitrary states it serves both search directions.
//
// Instances:
//
//   - KorfInstance(1) is the first instance of Korf's classical
//     benchmark set, whose optimal solution length is 57.
//   - Instance(id) derives further reproducible instances by a
//     deterministic random walk from the goal, so every id is
//     guaranteed solvable.
package stp
