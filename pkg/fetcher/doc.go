// Package fetcher downloads every card image linked from a listing page
// that is not already present in the output directory.
//
// A run is sequential. References are processed in document order, files
// that already exist are skipped without a request, and the first failed
// download ends the run. Files written before the failure stay on disk, so
// running again resumes where the previous run stopped.
package fetcher
