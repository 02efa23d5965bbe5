// Package hydraulics holds the calculation engines: the ANSI/HI 9.6.7
// viscosity correction for centrifugal pumps (water-known and viscous-known
// directions, plus curve sweeps), the Colebrook-White friction factor solver
// and the pressurized pipeline sizing built on Darcy-Weisbach.
//
// All functions are pure. Units are fixed per field: pump flows in m³/h,
// heads in m, speed in rpm, viscosity in cSt; pipeline quantities in SI.
package hydraulics
