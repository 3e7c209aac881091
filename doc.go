// Package gunshot synthesizes anechoic gunshot sounds from physical
// parameters — no recordings, just geometry and ballistics.
//
// 🚀 What does it generate?
//
//	A gunshot heard at a microphone is the sum of two pressure events:
//		• Muzzle blast: the Friedlander wave of the propellant gases,
//		  scaled and directed by the energy deposition rate at the muzzle
//		• Ballistic crack: the N-shaped shock cone a supersonic bullet
//		  drags behind it, heard only inside the Mach cone
//
// ✨ Why choose this library?
//
//   - Deterministic – same records in, bit-identical samples out
//   - Physical – peak pressures, arrival times and durations follow
//     published muzzle-blast and N-wave models, not sound design
//   - Pure functions – no shared state, safe for concurrent rendering
//
// Everything is organized under flat subpackages:
//
//	geometry/    — source–receiver distance, bore-line angle, miss distance
//	muzzleblast/ — Friedlander muzzle-blast model
//	nwave/       — ballistic N-wave model
//	gunshot/     — scene & ballistics records, the two-component composer
//	wavio/       — normalization and 16-bit PCM WAV output
//	align/       — Dynamic Time Warping for render-vs-recording checks
//	cmd/gunshot/ — command-line renderer with optional playback
//
// Quick sketch of a render at 100 m downrange, 5 m off the bore line:
//
//	crack ──╖            ╓── blast
//	        ║  N-wave    ║ Friedlander
//	──────╥─╜────────────╜──────────── t
//	      0.11 s         0.29 s
//
// Dive into examples/ for runnable renders and README-style scenarios.
//
//	go get github.com/metu-sparg/gunshot
package gunshot
