// Package ports defines the interfaces that connect the filter loop in
// internal/app to infrastructure adapters.
//
// # Port Interfaces
//
//   - [ChunkReader]: yields bounded chunks of the input stream
//   - [Logger]: structured logging abstraction
//
// The application layer depends only on these interfaces. Adapters under
// internal/adapters implement them with bufio, mmap and zerolog.
package ports
