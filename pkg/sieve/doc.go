// Package sieve finds primes with a chain of concurrent filter stages.
//
// The driver feeds 2..limit into the first stage. Every stage keeps the first
// value it receives as its own prime, drops multiples of it, and forwards
// everything else to a successor it creates on first use. A single
// end-of-stream message flows down the chain behind the candidates and stops
// each stage in turn; Run returns once the registry has seen every stage
// finish.
//
// Entry points:
// - Run: drive one pipeline with optional Handlers and get a Report
// - Collect/Stream: primes as a slice or as a channel closed on quiescence
// - ParseLimit: validate caller input before any work starts
// - WithQueueCapacity: per-run buffer size carried in the context
//
// There is no cancellation path. A context passed to Run only carries options
// and is handed to the callbacks; a stalled consumer stalls the whole chain.
package sieve
