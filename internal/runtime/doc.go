// Package runtime provides the Context a push run works against. It bundles
// the git repository, console output and prompts so tests can swap them out.
package runtime
