// Package legacy implements the line-oriented text protocol.
//
// Base requests are a count line followed by that many commands:
//
//	Stop Tolstopaltsevo: 55.611087, 37.20829, 3900m to Marushkino
//	Bus 256: Biryulyovo Zapadnoye > Biryusinka > Biryulyovo Zapadnoye
//	Bus 750: Tolstopaltsevo - Marushkino - Rasskazovka
//
// A route joined by '>' is a roundtrip; one joined by '-' is linear.
// Stat requests are a count line followed by "Bus NAME" or "Stop NAME" lines,
// each answered with one output line.
package legacy
