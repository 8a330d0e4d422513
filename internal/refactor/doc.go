// Package refactor expands editor placeholders.
//
// A placeholder token <#T##display##type##typeForExpansion#> whose type is a
// function type expands into a closure placeholder such as
// <#{ arg in <#T##Int##Int#> }#>; any other placeholder expands into its
// display text. When closure placeholders form the trailing run of a call's
// arguments they are expanded together with the call line's indentation.
//
// Refactorings never fail: they return no edits (or false) when the input
// does not fit.
package refactor
