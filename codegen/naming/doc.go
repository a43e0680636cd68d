// Package naming contains the naming rules shared by the autoreg discovery and
// synthesis stages.
//
// The functions in this package centralize how accessor, setter, receiver and
// output file names are derived from a field declaration so that both stages
// agree on them and regeneration produces stable names.
package naming
