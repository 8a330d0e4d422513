// Package fix describes text edits and applies them to file contents.
//
// Refactorings return []SourceEdit against the file they were computed on;
// hosts either apply them in memory (Apply) or write them back to disk
// (ApplyFiles).
package fix
