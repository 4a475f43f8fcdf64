// Package frenzyhtml implements the four-stage HTML5 parsing pipeline
// described in spec.md: a streaming UTF-8 decoder, an input
// preprocessor, a tokenizer, and a tree constructor that builds a
// minimal DOM. Parse wires the four stages into a single call; each
// stage is also usable on its own via the cpbuf/decode/preprocess/
// tokenizer/dom/treebuilder packages for callers that want to drive the
// pipeline incrementally (e.g. as bytes arrive off a network socket).
package frenzyhtml
