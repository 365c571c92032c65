// Package item tracks individual garment lines through the plant: inspection
// findings, the per-item status machine, write-once phase timestamps, quality
// score and additional charges.
package item
