// Package extract recovers a single JSON object from raw LLM completion
// text. Models frequently wrap their output in markdown code fences, prepend
// or append prose, or mangle the syntax; this package applies a layered
// strategy (fence stripping, direct parse, string-aware brace matching,
// automatic JSON repair) before giving up with a clear error.
package extract
