// Package cli implements the scholarseek command line interface: a manual
// run trigger, a status view over the cached last-run summary, and a daemon
// that schedules runs at the configured interval. All three resolve
// configuration the same way and converge on the same run entry point.
package cli
