// Command stemfeat walks a directory tree of multi-stem recordings and
// writes one MFCC feature file per (stem, segment) pair.
//
// Each track is decoded at 22050 Hz into its stems, every stem is cut
// into 5-second segments (the last segment keeps its natural, shorter
// length), and each segment's cepstral matrix is saved as a NumPy .npy
// file named <track>_stem<i>_segment<j>.npy. The output tree mirrors
// the input tree.
//
// Usage:
//
//	stemfeat [--input dir] [--output dir] [--duration seconds] [--segment seconds]
//
// Defaults read data/raw and write data/processed; all parameters can
// also be set through STEMFEAT_* environment variables or a .env file.
// Decoding relies on ffmpeg and ffprobe being on the PATH.
package main
