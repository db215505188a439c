// Package config loads a world definition from a YAML file: the initial
// arrow count and the N×N grid of cell labels (§6: "the world input is a
// row-major N×N array of labels").
package config
