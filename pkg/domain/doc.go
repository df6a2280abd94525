// Package domain contains the shared data model of the scan grid: scan
// targets and jobs, per-engine results and the merged consensus output.
// Types here carry no behavior beyond classification helpers; all mutation
// happens in the components that own them.
package domain
