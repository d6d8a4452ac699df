// Package mine provides the gold mine facade.
//
// A Mine owns one instance of each subsystem and exposes Operate, which runs
// the fixed mining sequence across them. Callers never touch the subsystems
// directly; single-operation access goes through Mine.Execute.
package mine
