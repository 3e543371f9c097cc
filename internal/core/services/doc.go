// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services depend only on ports, domain, and the geo and heuristics packages.
package services
