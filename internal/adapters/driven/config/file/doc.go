// Package file provides TOML file-backed configuration for the
// real-estate knowledge base. Settings live in
// ~/.realestate/config.toml by default; nested tables are flattened to
// dot-notation keys ("server.port").
package file
