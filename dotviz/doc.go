// Package dotviz draws a repaired tree as a Graphviz digraph.
//
// Every node becomes "N_<id>" labelled with its name and its priority to four
// decimals. Nodes whose priority exceeds Options.Threshold are filled red,
// the others yellow; the root is an ellipse (green when it is below the
// threshold) and every other node a box. Only selected arcs are emitted, in
// blue, so the picture shows the oriented tree and nothing else.
//
// ToDOT only builds text. RenderSVG lays it out with the embedded Graphviz
// from github.com/goccy/go-graphviz, so no dot binary is needed.
package dotviz
