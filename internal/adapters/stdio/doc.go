// Package stdio adapts the process's standard streams to the filter.
//
// [ChunkReader] splits input into newline-terminated chunks of bounded size.
// [OpenInput] maps standard input into memory when it is a regular file and
// falls back to plain reads for pipes and terminals.
package stdio
