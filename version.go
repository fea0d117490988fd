package pairmap

const appName = "pairmap"

// Version is set by -ldflags at release build.
var Version = "current"
