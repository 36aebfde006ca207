// Package ws serves the pointer-control websocket.
package ws

import "github.com/frudas24/screenpad/internal/geom"

// Message is an inbound control websocket payload.
type Message struct {
	T       string     `json:"t"`
	Control string     `json:"control,omitempty"`
	ID      int        `json:"id,omitempty"`
	X       float64    `json:"x,omitempty"`
	Y       float64    `json:"y,omitempty"`
	Rect    *geom.Rect `json:"rect,omitempty"`
	Enabled *bool      `json:"enabled,omitempty"`
}
