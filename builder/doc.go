// SPDX-License-Identifier: MIT

// Package builder produces city networks: the seed network as an explicit
// configuration value (Config, DefaultConfig, Build) and reproducible
// synthetic grid networks for tests and demos (Synthetic).
//
// Every network built here satisfies the property the distance-optimal
// algorithms rely on: a route is never shorter than the great-circle
// distance between its endpoints.
package builder
