// Package message defines the typed inbound messages of the dashboard
// WebSocket feed and parsing from raw frames.
//
// Inbound frames are JSON objects of the shape {"type": string, "data":
// object}. The recognized types are connected, ping, signal, trade_open,
// and trade_close; any other type parses to UnknownMsg so consumers can
// ignore it explicitly instead of erroring.
package message
