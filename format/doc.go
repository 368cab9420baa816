// Package format turns log calls into bounded text.
//
// Message is the single audited bounded-expansion path: it expands a printf
// template into a fixed 8 KiB budget and truncates silently at the boundary.
// No allocation failure is possible because the working buffer is pooled
// and fixed-capacity, and filtered-out records never reach it.
//
// Console renders finished records into the one-line shape consumed by the
// console sink and the logd daemon. It uses pooled buffers and Append-style
// functions (time.AppendFormat, strconv.AppendInt) so rendering does not
// allocate per call, and pre-computes the level brackets ("[ERROR] ", etc.)
// for the monochrome path.
package format
