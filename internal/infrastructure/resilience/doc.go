// Package resilience provides a consecutive-failure circuit breaker used to
// shield the shell from an unreachable guest backend.
package resilience
