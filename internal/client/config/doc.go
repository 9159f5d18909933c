// Package config loads settings for the Alerta Verde CLI.
//
// Sources are applied in order, later ones winning:
//
//  1. LoadDefaults
//  2. environment (optionally seeded from a .env file via -env / -e)
//  3. JSON file given with -config / -c
//  4. command-line flags
package config
