// Package classwork implements a small collection of self-contained word
// exercises: finding symmetric word pairs, comparing strings for anagram
// equality, and extracting candidate word tokens from running prose. The
// delimited-file column summarizer and the earthquake feed reader live in
// the summary and quakefeed subpackages.
package classwork
