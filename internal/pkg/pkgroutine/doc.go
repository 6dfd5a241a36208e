// Package pkgroutine runs background work under a concurrency cap. The
// Manager collects task errors for Wait and recovers panics so a failing
// task never takes the process down with it.
package pkgroutine
