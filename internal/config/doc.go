// Package config loads shopfilter's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shopfilter/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. SHOPFILTER_BASE_URL, when set, replaces the API base URL
//
// # Default Values
//
//   - Config file: ~/.config/shopfilter/config.toml
//   - API base URL: http://127.0.0.1:3000/
//   - Start URL: http://127.0.0.1:3000/products
//   - Log file: ~/.local/state/shopfilter/shopfilter.log
//   - Metrics listener: disabled
//
// # TOML Format
//
//	base_url = "https://shop.example/"
//	start_url = "https://shop.example/products?search=boots"
//	log_file = "~/.local/state/shopfilter/shopfilter.log"
//	metrics_addr = "127.0.0.1:9464"
//
// All fields are optional. Tilde expansion is performed for log_file.
//
// Missing config files are NOT an error; defaults are used instead.
package config
