// Package lineio provides the stream-processing helpers the timestamp
// consumers lean on: a line-oriented tokenizer over a byte stream and a
// buffered byte-copy helper. Neither has ordering or consistency concerns;
// they are plain plumbing for feeding encoded timestamps through readers
// and writers.
package lineio
