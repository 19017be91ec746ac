// Package config loads the generator settings: the embedded defaults, an
// optional protolist.yaml file and PROTOLIST_* environment variables, merged
// with Viper and validated against an embedded JSON schema. It also locates
// the scan root from WEBOTS_HOME, reading a .env file first when present.
package config
