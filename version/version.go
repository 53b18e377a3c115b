// Package version carries build identity, overridable at link time.
package version

//nolint:gochecknoglobals // set via -ldflags at build time
var (
	name    = "tonegate"
	version = "dev"
	commit  = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}
