// Package cli wires the gradbar commands: render, watch, demo, themes,
// init, and version. Commands resolve configuration (flag > config file >
// builtin default), build the theme registry, and hand rendering to the ui
// and tui packages.
package cli
