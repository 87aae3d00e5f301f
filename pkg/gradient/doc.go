// Package gradient computes the color stops for a progress bar whose fill
// color varies with progress.
//
// The package has two halves. The codec half turns hex-encoded colors
// ("#39FF14", "#fff", "#ff000080") into normalized RGBA channels and back,
// and linearly interpolates between two colors. The resolver half walks a
// sparse set of (fraction, color) anchors and produces the ordered stop
// list to paint for a given progress value: every anchor already passed,
// plus one interpolated color partway into the next segment.
//
// Everything here is pure and stateless; concurrent use needs no locking.
// Malformed color input never errors — it decodes as opaque black, so the
// caller always gets something renderable.
package gradient
