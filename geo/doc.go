// Package geo provides geographic coordinates and great-circle distances.
//
// Distances are computed with the haversine formula on a sphere of radius
// EarthRadius and are expressed in meters.
package geo
