// Package config holds the translator settings and the static profile
// fragments (the Dataset class, the enabled-class allow-list and the input
// groups).
//
// Settings are read from YAML on top of an embedded default file, then from
// JS2C_* environment variables. A .env file in the working directory is
// loaded into the environment first.
package config
