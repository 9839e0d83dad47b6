// Package render serializes vdom trees to HTML.
//
// Each component instance owns a Renderer. During a render cycle the renderer
// assigns sequential binding ids (data-wv attributes) to interactive elements
// and collects their handlers into a registry; the component dispatches
// incoming browser events against that registry. Reset is called before every
// cycle, so a registry only ever describes the most recent render.
package render
