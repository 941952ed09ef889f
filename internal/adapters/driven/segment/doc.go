// Package segment provides the sentence splitter implementations behind
// the driven.SentenceSplitter port.
//
// Two splitters are available: Simple splits on terminator punctuation,
// Linguistic additionally guards against common scholarly abbreviations
// so citations like "et al." do not break sentences apart.
package segment
