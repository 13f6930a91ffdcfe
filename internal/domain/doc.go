// Package domain contains the core types of the paralog block masker.
//
// It has no dependencies on I/O, logging or configuration and contains only
// the state machine that decides how each input chunk is emitted.
//
// # Entities
//
//   - [FilterState]: whether the filter is inside a paralog region and
//     whether the previous chunk ended a physical line
//   - [Action]: how a single chunk is emitted
//   - [Stats]: counters collected over one run
package domain
