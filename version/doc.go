// Package version provides build-time version information.
//
// The variables are set with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/blogpost/version.Version=1.2.3 \
//	  -X github.com/ncobase/blogpost/version.Branch=main \
//	  -X github.com/ncobase/blogpost/version.Revision=abc123 \
//	  -X 'github.com/ncobase/blogpost/version.BuiltAt=$(date)'" ./cmd/blogpost
//
// When Revision is not set, the VCS revision embedded by the Go toolchain is
// used if present.
package version
