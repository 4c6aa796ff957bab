// Package pipeline fans per-record work out to a pool of goroutines and
// hands the results back in input order.
//
// Workers only compute; the collector is the single goroutine that calls
// visit, so visit needs no locking.
package pipeline
