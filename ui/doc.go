// Package ui holds the leaf views of the records dashboard. Each view embeds
// component.Base, renders its whole subtree from state, and talks to the
// remote service exclusively through the gateway client it was constructed
// with. Views never reach into each other's state; cross-view coordination
// happens through navigation.
package ui
