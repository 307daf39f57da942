// Package environment names the deployment environment a strkit process runs
// in and carries it through request contexts.
//
// Parse accepts the long names and their common short forms ("prod",
// "stage", "dev"). Middleware stores the environment in every request
// context, and LoggerExtractor lets pkg/logger attach it as an "env"
// attribute to each record logged with that context.
package environment
