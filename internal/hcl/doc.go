// Package hcl provides the HCL implementation of the config.Loader and
// config.SkeletonWriter interfaces. It is responsible for parsing project
// files, evaluating attribute expressions against an evaluation context that
// exposes the process environment as `env`, and converting the resulting cty
// values into the config model.
package hcl
