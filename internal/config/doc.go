// Package config provides configuration and path management for the
// recidivism statistics pipeline.
//
// Configuration is loaded from environment variables with the RECID_
// prefix, layered over an optional recid.yaml file. The Paths type is
// the single source of truth for every directory and well-known file
// the pipeline reads or writes; no other package builds paths from
// string literals.
package config
